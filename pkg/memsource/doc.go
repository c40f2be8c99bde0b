// Package memsource provides types, interfaces, and helpers for working with the
// Memsource (Phrase TMS) REST API v1.
//
// # Overview
//
// The memsource package defines the domain types (Project, Job, Client, Language,
// LoginResponse) and the interfaces for resource-oriented clients (ProjectsClient,
// JobsClient, ClientsClient, LanguagesClient, AuthClient). A concrete implementation
// is provided by the msclient package, which wires configuration, transport, and
// authentication. Most consumers should import msclient to obtain a Session and
// then use the resource clients exposed here.
//
// Getting a session
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/memsource/pkg/memsource"
//	  "github.com/fivetwenty-io/memsource/pkg/msclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  session, err := msclient.New(ctx, &memsource.Config{
//	    Username: "user@example.com",
//	    Password: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  project, err := session.Projects().Create(ctx, "Test Project", "en", []string{"es"}, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = project
//	}
//
// # Responses
//
// Every typed result keeps the full server response in its Raw field as a
// Document, so fields that are not modeled remain reachable by dotted path:
//
//	email := project.Raw.String("owner.email")
//
// # Errors
//
// All remote-call failures are reported as *Error, which carries the HTTP status
// and the server's errorDescription. Helpers such as IsUnauthorized and IsNotFound
// make it easy to branch on common cases. The client never retries.
package memsource
