package middlewares

import (
	"context"
	"errors"
	"log"
	"net/http"

	"travelbook/src/lib"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

func VerifyIdToken(ctx *gin.Context) {
	fauth, err := lib.GetFirebaseAuth()
	if err != nil {
		log.Printf("Error retrieving Firebase Auth instance: %s\n", err.Error())
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	FirebaseAuth(fauth)(ctx)
}

// FirebaseAuth sets uid and email from a verified Firebase ID token.
func FirebaseAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		idToken := bearerToken(ctx)
		if idToken == "" {
			err := errors.New("missing authorization header")
			log.Printf("Check failed: %s\n", err.Error())
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		token, err := verifier.VerifyIDToken(ctx, idToken)
		if err != nil {
			log.Printf("Failed to verify ID token: %v\n", err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Failed to verify ID token"})
			return
		}
		ctx.Set("uid", token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			ctx.Set("email", email)
		}
		ctx.Next()
	}
}
