// Package collibra is the Catalog-A adapter: a client for the Collibra knowledge graph
// (GraphQL) and REST 2.0 APIs.
//
// # Protocol
//
// Reads go through a fixed set of parameterized GraphQL queries (queries.go), posted to
// /graphql/knowledgeGraph/v1. Mutations use /rest/2.0/{resource}. Every call uses Basic
// auth and a bounded timeout. A response outside 2xx is an *APIError carrying the raw
// body; a 2xx GraphQL response with an errors list is a *GraphQLError. Lookups by name
// or id that find nothing return an error wrapping ErrNotFound.
//
// # Pagination
//
// BusinessTerms and Tables are ascending-id pages. The cursor is the id of the last
// asset of the previous page and is exclusive.
//
// # Credentials
//
// ResolveCredentials loads URL, username and password from an AWS Secrets Manager
// secret when collibra.secret_name is configured.
//
// # Create-or-get
//
// GetOrCreateProject and GetOrCreateUser are check-then-create. Concurrent calls for the
// same name inside one process are collapsed with singleflight; across processes a
// duplicate remains possible because the REST API has no idempotency key.
package collibra
