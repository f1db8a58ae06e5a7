// Package model defines the persisted entities and the request payloads
// the HTTP layer binds into.
//
// Entities carry `db` tags for pgx row scanning and `json` tags for
// responses. Payloads carry `param`/`json` tags for echo binding and
// `validate` tags checked by Validate. Required booleans, numbers and
// timestamps are pointers so an omitted field is distinguishable from a
// zero value.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// newValidator reports fields by their JSON name (or path parameter
// name) so errors match what the client sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = fld.Tag.Get("param")
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func init() {
	// Money and rates go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// DeleteResponse is returned by every successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
}

// Deleted builds the "<Resource> deleted successfully" response.
func Deleted(resource string) *DeleteResponse {
	return &DeleteResponse{Message: resource + " deleted successfully"}
}

// IDRequest addresses a single row by the :id path parameter.
type IDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *IDRequest) Validate() error {
	return validate.Struct(r)
}

// UserScopedRequest addresses the rows owned by the user in the :id
// path parameter.
type UserScopedRequest struct {
	UserID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *UserScopedRequest) Validate() error {
	return validate.Struct(r)
}

// EmptyRequest is bound by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}
