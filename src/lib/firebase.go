package lib

import (
	"context"
	"log"
	"os"
	"path"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var innerApp *firebase.App
var innerAuth *auth.Client
var innerFirestore *firestore.Client

func getOpts() []option.ClientOption {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") != "" && os.Getenv("SECRETS_DIR") == "" {
		return nil
	}
	secretsPath := os.Getenv("SECRETS_DIR")
	return []option.ClientOption{option.WithCredentialsFile(path.Join(secretsPath, "admin-sdk-credentials.json"))}
}

func getApp(ctx context.Context) (*firebase.App, error) {
	if innerApp != nil {
		return innerApp, nil
	}
	var conf *firebase.Config
	if projectID := os.Getenv("FIREBASE_PROJECT_ID"); projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}
	app, err := firebase.NewApp(ctx, conf, getOpts()...)
	if err != nil {
		log.Printf("error initializing app: %v\n", err.Error())
		return nil, err
	}
	innerApp = app
	return app, nil
}

func GetFirebaseAuth() (*auth.Client, error) {
	if innerAuth != nil {
		return innerAuth, nil
	}
	app, err := getApp(context.Background())
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(context.Background())
	if err != nil {
		log.Printf("error initializing Firebase Auth: %v\n", err.Error())
		return nil, err
	}
	innerAuth = client
	return client, nil
}

// GetFirestore returns the shared client used by the firestore inventory backend.
func GetFirestore() (*firestore.Client, error) {
	if innerFirestore != nil {
		return innerFirestore, nil
	}
	app, err := getApp(context.Background())
	if err != nil {
		return nil, err
	}
	client, err := app.Firestore(context.Background())
	if err != nil {
		log.Printf("error initializing Firestore: %v\n", err.Error())
		return nil, err
	}
	innerFirestore = client
	return client, nil
}

func CloseFirestore() {
	if innerFirestore == nil {
		return
	}
	if err := innerFirestore.Close(); err != nil {
		log.Printf("error closing Firestore: %s\n", err.Error())
	}
	innerFirestore = nil
}
