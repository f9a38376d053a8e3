// Package zammad provides a client for the Zammad helpdesk REST API:
// https://docs.zammad.org/en/latest/api/intro.html
//
// Features:
// - Basic-auth and access-token credentials attached per request.
// - Strongly typed helpers for tickets, users, organizations, groups and
//   object manager attributes, with iterator-based pagination.
package zammad
