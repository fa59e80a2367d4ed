package models

import "time"

// VerificationStatus tracks where a provider application sits in the admin
// review workflow.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// VerificationDocument references a credential file held in the blob store.
type VerificationDocument struct {
	PublicID   string    `bson:"public_id" json:"publicId"`
	Label      string    `bson:"label" json:"label"`
	UploadedAt time.Time `bson:"uploaded_at" json:"uploadedAt"`
}

// Provider is a translator / tour guide offering services on the platform.
// Identity and sign-in live with the external identity provider; this record
// only carries the marketplace profile.
type Provider struct {
	ID                    string                 `bson:"id" json:"id"`
	Name                  string                 `bson:"name" json:"name"`
	Email                 string                 `bson:"email" json:"email"`
	Phone                 string                 `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio                   string                 `bson:"bio,omitempty" json:"bio,omitempty"`
	ServiceTypes          []string               `bson:"service_types" json:"serviceTypes"`
	Timezone              string                 `bson:"timezone" json:"timezone"`
	VerificationStatus    VerificationStatus     `bson:"verification_status" json:"verificationStatus"`
	VerificationNotes     string                 `bson:"verification_notes,omitempty" json:"verificationNotes,omitempty"`
	VerificationDocuments []VerificationDocument `bson:"verification_documents,omitempty" json:"verificationDocuments,omitempty"`
	CreatedAt             time.Time              `bson:"created_at" json:"createdAt"`
	UpdatedAt             time.Time              `bson:"updated_at" json:"updatedAt"`
}
