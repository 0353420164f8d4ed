// Package projects mirrors DataZone projects, their asset listings and their SSO members into
// Collibra, a few projects per invocation.
package projects
