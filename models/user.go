package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the account aggregate owned by the identity provider. The cart
// service only reads the address fields and debits WalletMoney at checkout.
type User struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	WalletMoney float64            `json:"walletMoney" bson:"walletMoney"`
	Address     string             `json:"address" bson:"address"`
	AddressSet  bool               `json:"addressSet" bson:"addressSet"`
}

// HasNonDefaultAddress reports whether the user configured a real shipping
// address. Both the flag and the address string are checked because the two
// can drift apart (flagged set but still holding the default placeholder).
func (u *User) HasNonDefaultAddress(defaultAddress string) bool {
	return u.AddressSet && u.Address != defaultAddress
}
