package client

import (
	"github.com/fivetwenty-io/memsource/internal/auth"
	internalhttp "github.com/fivetwenty-io/memsource/internal/http"
)

func newAuthedHTTPClient(fake *FakeServer) *internalhttp.Client {
	return internalhttp.NewClient(fake.URL(), auth.NewStaticTokenManager(FakeToken))
}
