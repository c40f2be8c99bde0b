package memsource

// Reference represents a lightweight link to another resource.
type Reference struct {
	ID   string `json:"id,omitempty"   yaml:"id,omitempty"`
	UID  string `json:"uid,omitempty"  yaml:"uid,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// User represents an account as embedded in login responses and resource owners.
type User struct {
	ID        string `json:"id,omitempty"        yaml:"id,omitempty"`
	UID       string `json:"uid,omitempty"       yaml:"uid,omitempty"`
	UserName  string `json:"userName,omitempty"  yaml:"userName,omitempty"`
	FirstName string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"  yaml:"lastName,omitempty"`
	Email     string `json:"email,omitempty"     yaml:"email,omitempty"`
	Role      string `json:"role,omitempty"      yaml:"role,omitempty"`
}

// LoginResponse represents the auth/login response.
type LoginResponse struct {
	Token   string   `json:"token"             yaml:"token"`
	Expires string   `json:"expires,omitempty" yaml:"expires,omitempty"`
	User    User     `json:"user"              yaml:"user"`
	Raw     Document `json:"-"                 yaml:"-"`
}

// Project represents a translation project.
type Project struct {
	ID          string     `json:"id,omitempty"          yaml:"id,omitempty"`
	UID         string     `json:"uid,omitempty"         yaml:"uid,omitempty"`
	InternalID  int64      `json:"internalId,omitempty"  yaml:"internalId,omitempty"`
	Name        string     `json:"name"                  yaml:"name"`
	Status      string     `json:"status,omitempty"      yaml:"status,omitempty"`
	SourceLang  string     `json:"sourceLang,omitempty"  yaml:"sourceLang,omitempty"`
	TargetLangs []string   `json:"targetLangs,omitempty" yaml:"targetLangs,omitempty"`
	DateCreated string     `json:"dateCreated,omitempty" yaml:"dateCreated,omitempty"`
	DateDue     string     `json:"dateDue,omitempty"     yaml:"dateDue,omitempty"`
	Note        string     `json:"note,omitempty"        yaml:"note,omitempty"`
	Owner       User       `json:"owner"                 yaml:"owner"`
	CreatedBy   User       `json:"createdBy"             yaml:"createdBy"`
	Client      *Reference `json:"client,omitempty"      yaml:"client,omitempty"`
	Raw         Document   `json:"-"                     yaml:"-"`
}

// Client represents a customer record.
type Client struct {
	ID         string   `json:"id,omitempty"         yaml:"id,omitempty"`
	UID        string   `json:"uid,omitempty"        yaml:"uid,omitempty"`
	Name       string   `json:"name"                 yaml:"name"`
	ExternalID string   `json:"externalId,omitempty" yaml:"externalId,omitempty"`
	Note       string   `json:"note,omitempty"       yaml:"note,omitempty"`
	Raw        Document `json:"-"                    yaml:"-"`
}

// Language represents a supported language.
type Language struct {
	Code       string   `json:"code"                 yaml:"code"`
	Name       string   `json:"name"                 yaml:"name"`
	RFC        string   `json:"rfc,omitempty"        yaml:"rfc,omitempty"`
	Android    string   `json:"android,omitempty"    yaml:"android,omitempty"`
	AndroidBCP string   `json:"androidBcp,omitempty" yaml:"androidBcp,omitempty"`
	MAC        string   `json:"mac,omitempty"        yaml:"mac,omitempty"`
	Ms         string   `json:"ms,omitempty"         yaml:"ms,omitempty"`
	Raw        Document `json:"-"                    yaml:"-"`
}

// LanguageList represents the languages listing.
type LanguageList struct {
	Languages []Language `json:"languages" yaml:"languages"`
	Raw       Document   `json:"-"         yaml:"-"`
}

// Job represents one file translated into one target language.
type Job struct {
	UID        string     `json:"uid"                  yaml:"uid"`
	InnerID    string     `json:"innerId,omitempty"    yaml:"innerId,omitempty"`
	Filename   string     `json:"filename"             yaml:"filename"`
	Status     string     `json:"status,omitempty"     yaml:"status,omitempty"`
	TargetLang string     `json:"targetLang,omitempty" yaml:"targetLang,omitempty"`
	DateDue    string     `json:"dateDue,omitempty"    yaml:"dateDue,omitempty"`
	Project    *Reference `json:"project,omitempty"    yaml:"project,omitempty"`
	Raw        Document   `json:"-"                    yaml:"-"`
}

// AsyncRequest references the server-side request that processes an upload.
type AsyncRequest struct {
	ID          string `json:"id"                    yaml:"id"`
	DateCreated string `json:"dateCreated,omitempty" yaml:"dateCreated,omitempty"`
	Action      string `json:"action,omitempty"      yaml:"action,omitempty"`
}

// JobBatch represents the response to a job upload.
//
// Per-file failures are not errors: files the server could not import are
// listed in UnsupportedFiles and callers must inspect them.
type JobBatch struct {
	Jobs             []Job         `json:"jobs"                       yaml:"jobs"`
	UnsupportedFiles []string      `json:"unsupportedFiles,omitempty" yaml:"unsupportedFiles,omitempty"`
	AsyncRequest     *AsyncRequest `json:"asyncRequest,omitempty"     yaml:"asyncRequest,omitempty"`
	Raw              Document      `json:"-"                          yaml:"-"`
}

// Page represents a paged listing.
type Page[T any] struct {
	Content          []T      `json:"content"          yaml:"content"`
	TotalElements    int      `json:"totalElements"    yaml:"totalElements"`
	TotalPages       int      `json:"totalPages"       yaml:"totalPages"`
	PageSize         int      `json:"pageSize"         yaml:"pageSize"`
	PageNumber       int      `json:"pageNumber"       yaml:"pageNumber"`
	NumberOfElements int      `json:"numberOfElements" yaml:"numberOfElements"`
	Raw              Document `json:"-"                yaml:"-"`
}

// SetRaw attaches the raw response document.
func (r *LoginResponse) SetRaw(doc Document) { r.Raw = doc }

// SetRaw attaches the raw response document.
func (p *Project) SetRaw(doc Document) { p.Raw = doc }

// SetRaw attaches the raw response document.
func (c *Client) SetRaw(doc Document) { c.Raw = doc }

// SetRaw attaches the raw response document.
func (l *Language) SetRaw(doc Document) { l.Raw = doc }

// SetRaw attaches the raw response document.
func (l *LanguageList) SetRaw(doc Document) {
	l.Raw = doc

	for i, item := range doc.Docs("languages") {
		if i < len(l.Languages) {
			l.Languages[i].Raw = item
		}
	}
}

// SetRaw attaches the raw response document.
func (j *Job) SetRaw(doc Document) { j.Raw = doc }

// SetRaw attaches the raw response document and the per-job documents.
func (b *JobBatch) SetRaw(doc Document) {
	b.Raw = doc

	for i, item := range doc.Docs("jobs") {
		if i < len(b.Jobs) {
			b.Jobs[i].Raw = item
		}
	}
}

// SetRaw attaches the raw response document and the per-item documents.
func (p *Page[T]) SetRaw(doc Document) {
	p.Raw = doc

	items := doc.Docs("content")

	for i := range p.Content {
		if i >= len(items) {
			break
		}

		if setter, ok := any(&p.Content[i]).(RawSetter); ok {
			setter.SetRaw(items[i])
		}
	}
}

// RawSetter is implemented by results that keep their raw response document.
type RawSetter interface {
	SetRaw(doc Document)
}
