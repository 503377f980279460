package models

import "time"

// Document is metadata for a file stored in the object store. ObjectKey is
// the bucket key, prefixed with the agency id so tenants never share a
// namespace.
type Document struct {
	ID          int64     `json:"id"`
	AgencyID    int64     `json:"agencyId"`
	StudentID   int64     `json:"studentId"`
	UploadedBy  int64     `json:"uploadedBy"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	ObjectKey   string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
