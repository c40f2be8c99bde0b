package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// Credentials and identity served by FakeServer.
const (
	FakeUsername = "jdoe"
	FakePassword = "secret"
	FakeEmail    = "jdoe@example.com"
	FakeToken    = "fake-token"
	FakeBasePath = "/web/api2/v1/"
)

// FakeUpload records the last job upload FakeServer received.
type FakeUpload struct {
	ProjectID          string
	ContentType        string
	Metadata           map[string]interface{}
	ContentDisposition string
	Filename           string
	Body               []byte
}

// FakeServer is an in-memory stand-in for the Memsource REST API, mounted
// under FakeBasePath.
type FakeServer struct {
	server *httptest.Server

	mu         sync.Mutex
	nextID     int
	projects   []map[string]interface{}
	clients    []map[string]interface{}
	jobs       map[string][]map[string]interface{}
	lastUpload *FakeUpload
	hits       map[string]int
}

// NewFakeServer starts a fake API server that is closed when the test ends.
func NewFakeServer(t *testing.T) *FakeServer {
	t.Helper()

	fake := &FakeServer{
		nextID: 1,
		jobs:   make(map[string][]map[string]interface{}),
		hits:   make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+FakeBasePath+"auth/login", fake.login)
	mux.HandleFunc("GET "+FakeBasePath+"auth/whoAmI", fake.authed(fake.whoami))
	mux.HandleFunc("GET "+FakeBasePath+"projects", fake.authed(fake.listProjects))
	mux.HandleFunc("POST "+FakeBasePath+"projects", fake.authed(fake.createProject))
	mux.HandleFunc("GET "+FakeBasePath+"projects/{id}", fake.authed(fake.getProject))
	mux.HandleFunc("GET "+FakeBasePath+"projects/{id}/jobs", fake.authed(fake.listJobs))
	mux.HandleFunc("POST "+FakeBasePath+"projects/{id}/jobs", fake.authed(fake.createJobs))
	mux.HandleFunc("GET "+FakeBasePath+"projects/{id}/jobs/{uid}", fake.authed(fake.getJob))
	mux.HandleFunc("GET "+FakeBasePath+"clients", fake.authed(fake.listClients))
	mux.HandleFunc("POST "+FakeBasePath+"clients", fake.authed(fake.createClient))
	mux.HandleFunc("GET "+FakeBasePath+"clients/{id}", fake.authed(fake.getClient))
	mux.HandleFunc("GET "+FakeBasePath+"languages", fake.authed(fake.listLanguages))
	mux.HandleFunc("GET "+FakeBasePath+"languages/{code}", fake.authed(fake.getLanguage))

	fake.server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		fake.mu.Lock()
		fake.hits[request.Method+" "+strings.TrimPrefix(request.URL.Path, FakeBasePath)]++
		fake.mu.Unlock()

		mux.ServeHTTP(writer, request)
	}))
	t.Cleanup(fake.server.Close)

	return fake
}

// URL returns the API base URL, with trailing slash.
func (f *FakeServer) URL() string {
	return f.server.URL + FakeBasePath
}

// Hits returns how many requests matched "METHOD path", path relative to the base.
func (f *FakeServer) Hits(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.hits[key]
}

// LastUpload returns the most recent job upload, or nil.
func (f *FakeServer) LastUpload() *FakeUpload {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastUpload
}

func (f *FakeServer) user() map[string]interface{} {
	return map[string]interface{}{
		"id":        "1",
		"uid":       "user-uid-1",
		"userName":  FakeUsername,
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     FakeEmail,
		"role":      "ADMIN",
	}
}

func (f *FakeServer) newID() string {
	id := strconv.Itoa(f.nextID)
	f.nextID++

	return id
}

func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(body)
}

func writeError(writer http.ResponseWriter, status int, code, description string) {
	writeJSON(writer, status, map[string]string{
		"errorCode":        code,
		"errorDescription": description,
	})
}

func page(content []map[string]interface{}) map[string]interface{} {
	if content == nil {
		content = []map[string]interface{}{}
	}

	return map[string]interface{}{
		"content":          content,
		"totalElements":    len(content),
		"totalPages":       1,
		"pageSize":         50,
		"pageNumber":       0,
		"numberOfElements": len(content),
	}
}

func find(items []map[string]interface{}, key, value string) map[string]interface{} {
	for _, item := range items {
		if item[key] == value {
			return item
		}
	}

	return nil
}

func (f *FakeServer) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Query().Get("token") != FakeToken {
			writeError(writer, http.StatusUnauthorized, "AuthUnauthorized", "Unauthorized")

			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		next(writer, request)
	}
}

func (f *FakeServer) login(writer http.ResponseWriter, request *http.Request) {
	var body map[string]string

	err := json.NewDecoder(request.Body).Decode(&body)
	if err != nil || body["userName"] != FakeUsername || body["password"] != FakePassword {
		writeError(writer, http.StatusUnauthorized, "AuthInvalidCredentials", "Invalid credentials")

		return
	}

	writeJSON(writer, http.StatusOK, map[string]interface{}{
		"token":   FakeToken,
		"expires": "2030-01-01T00:00:00+0000",
		"user":    f.user(),
	})
}

func (f *FakeServer) whoami(writer http.ResponseWriter, _ *http.Request) {
	writeJSON(writer, http.StatusOK, map[string]interface{}{
		"user":    f.user(),
		"edition": map[string]string{"type": "ULTIMATE"},
	})
}

func (f *FakeServer) listProjects(writer http.ResponseWriter, request *http.Request) {
	content := f.projects
	if name := request.URL.Query().Get("name"); name != "" {
		content = nil

		for _, project := range f.projects {
			if project["name"] == name {
				content = append(content, project)
			}
		}
	}

	writeJSON(writer, http.StatusOK, page(content))
}

func (f *FakeServer) createProject(writer http.ResponseWriter, request *http.Request) {
	var body map[string]interface{}

	err := json.NewDecoder(request.Body).Decode(&body)
	if err != nil {
		writeError(writer, http.StatusBadRequest, "InvalidRequest", "Malformed JSON")

		return
	}

	id := f.newID()
	project := map[string]interface{}{
		"id":         id,
		"uid":        "project-uid-" + id,
		"internalId": f.nextID,
		"status":     "NEW",
		"owner":      f.user(),
		"createdBy":  f.user(),
	}

	for key, value := range body {
		project[key] = value
	}

	f.projects = append(f.projects, project)
	writeJSON(writer, http.StatusCreated, project)
}

func (f *FakeServer) getProject(writer http.ResponseWriter, request *http.Request) {
	project := find(f.projects, "id", request.PathValue("id"))
	if project == nil {
		writeError(writer, http.StatusNotFound, "ResourceNotFound", "Project not found")

		return
	}

	writeJSON(writer, http.StatusOK, project)
}

func (f *FakeServer) listJobs(writer http.ResponseWriter, request *http.Request) {
	if find(f.projects, "id", request.PathValue("id")) == nil {
		writeError(writer, http.StatusNotFound, "ResourceNotFound", "Project not found")

		return
	}

	writeJSON(writer, http.StatusOK, page(f.jobs[request.PathValue("id")]))
}

func (f *FakeServer) getJob(writer http.ResponseWriter, request *http.Request) {
	job := find(f.jobs[request.PathValue("id")], "uid", request.PathValue("uid"))
	if job == nil {
		writeError(writer, http.StatusNotFound, "ResourceNotFound", "Job not found")

		return
	}

	writeJSON(writer, http.StatusOK, job)
}

func (f *FakeServer) createJobs(writer http.ResponseWriter, request *http.Request) {
	projectID := request.PathValue("id")
	if find(f.projects, "id", projectID) == nil {
		writeError(writer, http.StatusNotFound, "ResourceNotFound", "Project not found")

		return
	}

	upload := &FakeUpload{
		ProjectID:          projectID,
		ContentType:        request.Header.Get("Content-Type"),
		ContentDisposition: request.Header.Get("Content-Disposition"),
	}

	err := json.Unmarshal([]byte(request.Header.Get("Memsource")), &upload.Metadata)
	if err != nil {
		writeError(writer, http.StatusBadRequest, "InvalidRequest", "Missing Memsource header")

		return
	}

	if _, encoded, ok := strings.Cut(upload.ContentDisposition, "''"); ok {
		upload.Filename, _ = url.PathUnescape(encoded)
	}

	upload.Body, err = io.ReadAll(request.Body)
	if err != nil {
		writeError(writer, http.StatusBadRequest, "InvalidRequest", "Unreadable body")

		return
	}

	f.lastUpload = upload

	targets, _ := upload.Metadata["targetLangs"].([]interface{})
	created := make([]map[string]interface{}, 0, len(targets))

	for _, target := range targets {
		id := f.newID()
		job := map[string]interface{}{
			"uid":        "job-uid-" + id,
			"innerId":    id,
			"filename":   upload.Filename,
			"status":     "NEW",
			"targetLang": target,
			"project":    map[string]string{"id": projectID},
		}
		created = append(created, job)
		f.jobs[projectID] = append(f.jobs[projectID], job)
	}

	writeJSON(writer, http.StatusCreated, map[string]interface{}{
		"jobs":             created,
		"unsupportedFiles": []string{},
		"asyncRequest":     map[string]string{"id": "async-" + f.newID(), "action": "IMPORT_JOB"},
	})
}

func (f *FakeServer) listClients(writer http.ResponseWriter, _ *http.Request) {
	writeJSON(writer, http.StatusOK, page(f.clients))
}

func (f *FakeServer) createClient(writer http.ResponseWriter, request *http.Request) {
	var body map[string]interface{}

	err := json.NewDecoder(request.Body).Decode(&body)
	if err != nil {
		writeError(writer, http.StatusBadRequest, "InvalidRequest", "Malformed JSON")

		return
	}

	id := f.newID()
	created := map[string]interface{}{"id": id, "uid": "client-uid-" + id}

	for key, value := range body {
		created[key] = value
	}

	// The first positional value is the display name.
	if _, ok := body["name"]; !ok {
		created["name"] = body["id"]
	}

	created["id"] = id
	f.clients = append(f.clients, created)
	writeJSON(writer, http.StatusCreated, created)
}

func (f *FakeServer) getClient(writer http.ResponseWriter, request *http.Request) {
	found := find(f.clients, "id", request.PathValue("id"))
	if found == nil {
		writeError(writer, http.StatusNotFound, "ResourceNotFound", "Client not found")

		return
	}

	writeJSON(writer, http.StatusOK, found)
}

var fakeLanguages = []map[string]interface{}{
	{"code": "en", "name": "English", "rfc": "en", "android": "en", "androidBcp": "b+en", "mac": "en", "ms": "en-US"},
	{"code": "es", "name": "Spanish", "rfc": "es", "android": "es", "androidBcp": "b+es", "mac": "es", "ms": "es-ES"},
	{"code": "de", "name": "German", "rfc": "de", "android": "de", "androidBcp": "b+de", "mac": "de", "ms": "de-DE"},
}

func (f *FakeServer) listLanguages(writer http.ResponseWriter, _ *http.Request) {
	writeJSON(writer, http.StatusOK, map[string]interface{}{"languages": fakeLanguages})
}

func (f *FakeServer) getLanguage(writer http.ResponseWriter, request *http.Request) {
	language := find(fakeLanguages, "code", request.PathValue("code"))
	if language == nil {
		writeError(writer, http.StatusNotFound, "ResourceNotFound", "Language not found")

		return
	}

	writeJSON(writer, http.StatusOK, language)
}
