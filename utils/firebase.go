// File: utils/firebase.go
package utils

import (
	"context"
	"log"

	"eccos/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	// AuthClient verifies identity-provider ID tokens.
	AuthClient *auth.Client
	// FCMClient sends push notifications.
	FCMClient *messaging.Client
)

// FirebaseInit initializes the Firebase App plus the Auth and Messaging clients.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}
	AuthClient = authClient

	fcmClient, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}
	FCMClient = fcmClient
}
