package controllers

import (
	"fmt"
	"log"

	"ecocycle/structs"
	"ecocycle/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/gin-gonic/gin"
)

// Cognito settings injected from config at startup.
var cognitoAppClientId string
var cognitoAppClientSecret string
var cognitoRegion string

// InitAuthService stores the Cognito client settings for the auth handlers.
func InitAuthService(appClientId, appClientSecret, region string) {
	cognitoAppClientId = appClientId
	cognitoAppClientSecret = appClientSecret
	cognitoRegion = region
}

func SignUp(ctx *gin.Context) {
	var request structs.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if err := signUpWithCognito(request.Email, request.Password, ctx); err != nil {
		ctx.JSON(500, gin.H{"error": "Failed to sign up", "message": err.Error()})
		return
	}

	ctx.JSON(200, gin.H{"message": "Sign-up successful"})
}

func VerifyEmail(ctx *gin.Context) {
	var request structs.VerifyEmailRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if err := verifyEmailWithCognito(request.Email, request.ConfirmationCode, ctx); err != nil {
		ctx.JSON(500, gin.H{"error": "Failed to verify email", "message": err.Error()})
		return
	}

	ctx.JSON(200, gin.H{"message": "Email verification successful"})
}

func Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	if err := loginWithCognito(request.Email, request.Password, ctx); err != nil {
		ctx.JSON(401, gin.H{"error": "Failed to sign in", "message": "Invalid email or password"})
		return
	}

	// Cognito accepted the credentials; hand out the app session token the
	// rest of the API verifies.
	token, err := utils.GenerateJWTToken(request.Email, request.Email)
	if err != nil {
		ctx.JSON(500, gin.H{"error": "Failed to issue session token"})
		return
	}

	ctx.JSON(200, gin.H{"message": "Sign-in successful", "accessToken": token})
}

func ForgotPassword(ctx *gin.Context) {
	var request structs.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid input", "message": "Check email format"})
		return
	}

	if err := initiateForgotPassword(request.Email, ctx); err != nil {
		ctx.JSON(500, gin.H{"error": "Failed to initiate password reset", "message": err.Error()})
		return
	}

	ctx.JSON(200, gin.H{"message": "Password reset initiated. Check your email for further instructions."})
}

func VerifyForgotPassword(ctx *gin.Context) {
	var request structs.VerifyForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if err := confirmForgotPassword(request.Email, request.Code, request.NewPassword, ctx); err != nil {
		ctx.JSON(500, gin.H{"error": "Failed to confirm password reset", "message": err.Error()})
		return
	}

	ctx.JSON(200, gin.H{"message": "Password successfully changed"})
}

func cognitoClient(ctx *gin.Context) (*cognitoidentityprovider.Client, error) {
	cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cognitoRegion))
	if err != nil {
		log.Println("Error loading AWS config:", err)
		return nil, fmt.Errorf("failed to load AWS config: %v", err)
	}
	return cognitoidentityprovider.NewFromConfig(cfg), nil
}

func signUpWithCognito(email, password string, ctx *gin.Context) error {
	client, err := cognitoClient(ctx)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, cognitoAppClientId, cognitoAppClientSecret)

	signupInput := cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(cognitoAppClientId),
		Password:   aws.String(password),
		SecretHash: aws.String(secretHash),
		Username:   aws.String(email),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(email),
			},
			{
				Name:  aws.String("nickname"),
				Value: aws.String(utils.ExtractNameFromEmail(email)),
			},
		},
	}

	if _, err := client.SignUp(ctx, &signupInput); err != nil {
		log.Println("Error during sign-up:", err)
		return fmt.Errorf("sign-up failed: %v", err)
	}
	return nil
}

func verifyEmailWithCognito(email, confirmationCode string, ctx *gin.Context) error {
	client, err := cognitoClient(ctx)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, cognitoAppClientId, cognitoAppClientSecret)

	confirmSignUpInput := cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(cognitoAppClientId),
		ConfirmationCode: aws.String(confirmationCode),
		Username:         aws.String(email),
		SecretHash:       aws.String(secretHash),
	}

	if _, err := client.ConfirmSignUp(ctx, &confirmSignUpInput); err != nil {
		log.Println("Error during email verification:", err)
		return fmt.Errorf("email verification failed: %v", err)
	}
	return nil
}

func loginWithCognito(email, password string, ctx *gin.Context) error {
	client, err := cognitoClient(ctx)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, cognitoAppClientId, cognitoAppClientSecret)

	authInput := cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(cognitoAppClientId),
		AuthParameters: map[string]string{
			"USERNAME":    email,
			"PASSWORD":    password,
			"SECRET_HASH": secretHash,
		},
	}

	if _, err := client.InitiateAuth(ctx, &authInput); err != nil {
		return fmt.Errorf("authentication failed")
	}
	return nil
}

func initiateForgotPassword(email string, ctx *gin.Context) error {
	client, err := cognitoClient(ctx)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, cognitoAppClientId, cognitoAppClientSecret)

	forgotPasswordInput := cognitoidentityprovider.ForgotPasswordInput{
		ClientId:   aws.String(cognitoAppClientId),
		Username:   aws.String(email),
		SecretHash: aws.String(secretHash),
	}

	if _, err := client.ForgotPassword(ctx, &forgotPasswordInput); err != nil {
		return fmt.Errorf("error initiating forgot password: %v", err)
	}
	return nil
}

func confirmForgotPassword(email, code, newPassword string, ctx *gin.Context) error {
	client, err := cognitoClient(ctx)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, cognitoAppClientId, cognitoAppClientSecret)

	confirmForgotPasswordInput := cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:         aws.String(cognitoAppClientId),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
		SecretHash:       aws.String(secretHash),
	}

	if _, err := client.ConfirmForgotPassword(ctx, &confirmForgotPasswordInput); err != nil {
		return fmt.Errorf("error confirming forgot password: %v", err)
	}
	return nil
}
