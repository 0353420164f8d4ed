// Package datazone is the Catalog-B adapter: a thin domain layer over the Amazon DataZone
// (SageMaker Unified Studio) SDK.
//
// # Client
//
// Client exposes the search, fetch and mutation calls the engines need, translated into
// plain structs (Asset, Listing, GlossaryTerm, Project, UserProfile). The SDK client sits
// behind the API interface so the translation can be tested without AWS.
//
// # Pagination
//
// Search and list calls return a Page with an opaque NextToken that is empty on the last
// page. Drain loops a PageFunc until the token runs out.
//
// # Governed projects
//
// The engine only acts on projects its admin role belongs to. AdminUserID resolves the
// role ARN to an activated IAM user profile and GovernedProjects lists that user's active
// projects.
//
// # Glossary
//
// GlossaryResolver finds or creates the CollibraSyncedGlossary-<domain> glossary.
package datazone
