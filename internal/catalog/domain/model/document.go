package model

import "time"

// Document is a stored record together with its envelope metadata. Field
// values keep whatever dynamic shape the write request carried; the store
// assigns the ID.
type Document struct {
	DocumentID string                 `json:"id"`
	ParentID   string                 `json:"-"`
	Fields     map[string]interface{} `json:"fields"`
	CreateTime time.Time              `json:"createTime"`
	UpdateTime time.Time              `json:"updateTime"`
}
