// Package msclient provides the primary entry point for constructing a
// Memsource API session that implements the memsource.Session interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the memsource package. Most
// applications should import msclient to build a session, then use the
// returned memsource.Session to reach the resource clients: Projects(),
// Jobs(), Clients() and Languages().
//
// Quick start
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
//
//	  // Log in with username and password. The login happens here; a
//	  // rejected login returns an error and no session.
//	  session, err := msclient.NewWithPassword(ctx, "", "user", "pass")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or reuse a token you already have:
//	  session, err = msclient.NewWithToken(ctx, "", session.Token())
//	  if err != nil { log.Fatal(err) }
//
//	  // Or build from a full Config:
//	  session, err = msclient.New(ctx, &memsource.Config{
//	    Endpoint:  "https://cloud.memsource.com/web/api2/v1/",
//	    Token:     "...",
//	    UserAgent: "my-app/1.0",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  batch, err := session.Jobs().Create(ctx, "project-id", "upload.txt", "", []string{"es"}, nil)
//	  if err != nil { log.Fatal(err) }
//	  for _, job := range batch.Jobs { log.Println(job.UID, job.Filename) }
//	}
//
// Endpoint
//
// An empty endpoint means the Memsource cloud API. Endpoints without a scheme
// get https://, and a trailing slash is always added because resource paths
// are resolved relative to it.
//
// Errors
//
// Remote failures are *memsource.Error values; see memsource.IsUnauthorized
// and memsource.IsNotFound. Nothing is retried.
package msclient
