package service

import (
	"fmt"
	"time"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/credentials"
	cerrors "github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/errors"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/formatter"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/prompter"
)

// AuthService manages Graph API credentials.
type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Set prompts for and stores the page ID and access token.
func (as *AuthService) Set(pageID string) error {
	var err error
	if pageID == "" {
		pageID, err = prompter.PromptString("Page ID: ")
		if err != nil {
			return err
		}
	}
	if pageID == "" {
		return cerrors.ValidationError("page-id", "must not be empty")
	}

	token, err := prompter.PromptSecret("Page access token: ")
	if err != nil {
		return err
	}
	if token == "" {
		return cerrors.ValidationError("token", "must not be empty")
	}

	creds := &credentials.Credentials{
		PageID:      pageID,
		AccessToken: token,
		SavedAt:     time.Now(),
	}
	if err := credentials.Save(creds); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	logger.Info("Stored Graph API credentials", "page_id", pageID)
	formatter.PrintSuccess("✓ Credentials saved for page %s", pageID)
	return nil
}

// Status shows whether credentials are configured.
func (as *AuthService) Status() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}
	if !creds.IsValid() {
		formatter.PrintWarning("No Graph API credentials configured. Run 'juan365 auth set'.")
		return nil
	}
	return formatter.PrintKeyValue(map[string]interface{}{
		"page_id":  creds.PageID,
		"token":    maskToken(creds.AccessToken),
		"saved_at": creds.SavedAt.Format("2006-01-02 15:04"),
	})
}

// Clear removes stored credentials.
func (as *AuthService) Clear() error {
	if err := credentials.Delete(); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	formatter.PrintSuccess("✓ Credentials removed")
	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "…" + token[len(token)-4:]
}
