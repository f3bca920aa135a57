package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt work factor used for stored credentials.
const passwordCost = 10

type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string        `bson:"email" json:"email"`
	PassHash  []byte        `bson:"password" json:"-"`
	FullName  string        `bson:"fullName" json:"fullName"`
	Phone     string        `bson:"phone" json:"phone"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// SetPassword hashes the plaintext and stores the result. It is the only
// path that writes PassHash: generic field updates never re-hash an
// already-hashed value.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), passwordCost)
	if err != nil {
		return err
	}

	u.PassHash = hash

	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword(u.PassHash, []byte(plain)) == nil
}

type Application struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName          string        `bson:"fullName" json:"fullName"`
	PhoneNumber       string        `bson:"phoneNumber" json:"phoneNumber"`
	Email             string        `bson:"email" json:"email"`
	CdlLicense        string        `bson:"cdlLicense" json:"cdlLicense"`
	State             string        `bson:"state" json:"state"`
	DrivingExperience string        `bson:"drivingExperience" json:"drivingExperience"`
	TruckTypes        []string      `bson:"truckTypes" json:"truckTypes"`
	LongHaulTrips     string        `bson:"longHaulTrips" json:"longHaulTrips"`
	Comments          string        `bson:"comments,omitempty" json:"comments,omitempty"`
	Archived          bool          `bson:"archived" json:"archived"`
	CreatedAt         time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// ToggleArchived flips the archived flag. Persisting the change is up to
// the caller.
func (a *Application) ToggleArchived() {
	a.Archived = !a.Archived
}
