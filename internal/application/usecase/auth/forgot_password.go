// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pingoou/backend/internal/application/adapter"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// ForgotPasswordInput represents the input for forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// enumerationSafeMessage is returned regardless of whether the email exists.
const enumerationSafeMessage = "If an account with that email exists, we have sent a password reset link"

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.PasswordResetTokenService
	emailSender       adapter.EmailSender
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.PasswordResetTokenService,
	emailSender adapter.EmailSender,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		emailSender:       emailSender,
		appBaseURL:        appBaseURL,
	}
}

// Execute performs the forgot password request.
// Always returns success to prevent email enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Try to find user by email
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// User not found, but we still return success to prevent enumeration
		slog.Debug("Forgot password requested for non-existent email", "email", input.Email)
		return &ForgotPasswordOutput{Message: enumerationSafeMessage}, nil
	}

	// Generate reset token
	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		// Log error but still return success to prevent enumeration
		slog.Error("Failed to generate reset token", "error", err, "userID", user.ID)
		return &ForgotPasswordOutput{Message: enumerationSafeMessage}, nil
	}

	// Build reset URL
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, resetToken.Token)

	// Send password reset email
	if uc.emailSender != nil {
		_, err = uc.emailSender.Send(ctx, adapter.SendEmailInput{
			To:      user.Email,
			Subject: "PinGoou - Redefinição de senha",
			HTML:    resetEmailHTML(user.Name, resetURL),
			Text:    resetEmailText(user.Name, resetURL),
		})
		if err != nil {
			// Log error but still return success to prevent enumeration
			slog.Error("Failed to send password reset email", "error", err, "userID", user.ID)
		} else {
			slog.Info("Password reset email sent", "userID", user.ID, "email", user.Email)
		}
	} else {
		// Fallback: log for development when the email sender is not configured
		slog.Info("Password reset token generated (email sender not configured)",
			"userID", user.ID,
			"email", user.Email,
			"resetURL", resetURL,
		)
	}

	return &ForgotPasswordOutput{Message: enumerationSafeMessage}, nil
}

func resetEmailHTML(name, resetURL string) string {
	return fmt.Sprintf(
		`<p>Olá %s,</p>
<p>Recebemos um pedido para redefinir a senha da sua conta PinGoou.</p>
<p><a href="%s">Clique aqui para criar uma nova senha</a>. O link vale por 1 hora.</p>
<p>Se você não pediu a redefinição, ignore este email.</p>`,
		name, resetURL,
	)
}

func resetEmailText(name, resetURL string) string {
	return fmt.Sprintf(
		"Olá %s,\n\nRecebemos um pedido para redefinir a senha da sua conta PinGoou.\n"+
			"Acesse o link para criar uma nova senha (vale por 1 hora): %s\n\n"+
			"Se você não pediu a redefinição, ignore este email.\n",
		name, resetURL,
	)
}
