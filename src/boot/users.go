package boot

import (
	"context"

	"travelbook/src/lib"

	"firebase.google.com/go/v4/auth"
)

// UserDirectory mirrors admin changes on users to the identity provider.
type UserDirectory interface {
	Update(ctx context.Context, uid string, role string, disabled *bool) error
	Delete(ctx context.Context, uid string) error
}

type firebaseUsers struct{}

func NewFirebaseUsers() UserDirectory {
	return firebaseUsers{}
}

func (firebaseUsers) Update(ctx context.Context, uid string, role string, disabled *bool) error {
	client, err := lib.GetFirebaseAuth()
	if err != nil {
		return err
	}
	if disabled != nil {
		if _, err := client.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Disabled(*disabled)); err != nil {
			return err
		}
	}
	if role != "" {
		return client.SetCustomUserClaims(ctx, uid, map[string]any{"role": role})
	}
	return nil
}

func (firebaseUsers) Delete(ctx context.Context, uid string) error {
	client, err := lib.GetFirebaseAuth()
	if err != nil {
		return err
	}
	return client.DeleteUser(ctx, uid)
}
