// Package model holds the GORM persistence models. IDs are assigned in BeforeCreate hooks so the
// schema does not depend on database-side UUID functions.
package model

import "github.com/google/uuid"

func newID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All lists every model for schema migration, in dependency order.
func All() []any {
	return []any{
		&IdentityModel{},
		&CredentialModel{},
		&RefreshTokenModel{},
		&UserProfileModel{},
		&RetailerModel{},
		&CategoryModel{},
		&DealModel{},
		&WatchlistItemModel{},
		&PriceAlertModel{},
	}
}
