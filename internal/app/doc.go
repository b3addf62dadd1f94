// Package app holds the use cases of the question bank.
//
// Services here coordinate the domain with the adapters behind the ports
// interfaces. They never see GraphQL, HTTP or SQL types; the adapters
// translate at the edges.
package app
