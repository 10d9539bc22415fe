package application

import "exchange-service/internal/domain"

// ResolveIdentity picks the caller identity forwarded by the gateway: the
// account id when set, else the legacy user id. Values are trusted as-is.
func ResolveIdentity(accountID, userID *string) (string, error) {
	if accountID != nil && *accountID != "" {
		return *accountID, nil
	}
	if userID != nil && *userID != "" {
		return *userID, nil
	}
	return "", domain.ErrUnauthorized
}
