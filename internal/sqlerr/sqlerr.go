// Package sqlerr translates database driver errors.
//
// Postgres reports failures as SQLSTATE codes plus table, column and
// constraint metadata. This package normalizes them into a small Code
// enum and turns the common constraint violations into client-facing
// *errs.HTTPError values (a duplicate username becomes a 400 with
// USER_ALREADY_EXISTS instead of a 500).
package sqlerr
