package domain

import (
	"regexp"
	"strings"
)

// docBaseURL is the root of the 4D developer documentation site.
const docBaseURL = "https://developer.4d.com/docs"

// DocKind tags what a query resolved to.
type DocKind string

// Resolution kinds, in lookup priority order.
const (
	DocTopic   DocKind = "topic"
	DocClass   DocKind = "class"
	DocCommand DocKind = "command"
)

// DocLink is a resolved documentation reference.
type DocLink struct {
	Query string  `json:"query"`
	Kind  DocKind `json:"type"`
	URL   string  `json:"url"`
}

// classPages maps lowercase class names to their API page names.
var classPages = map[string]string{
	"blob":                "BlobClass",
	"collection":          "CollectionClass",
	"cryptokey":           "CryptoKeyClass",
	"dataclass":           "DataClassClass",
	"datastore":           "DataStoreClass",
	"email":               "EmailObjectClass",
	"entity":              "EntityClass",
	"entityselection":     "EntitySelectionClass",
	"file":                "FileClass",
	"folder":              "FolderClass",
	"formdata":            "FormDataClass",
	"httpagent":           "HTTPAgentClass",
	"httprequest":         "HTTPRequestClass",
	"imap transporter":    "IMAPTransporterClass",
	"mailbox":             "MailboxClass",
	"object":              "ObjectClass",
	"outgoingmessage":     "OutGoingMessageClass",
	"pop3 transporter":    "POP3TransporterClass",
	"session":             "SessionClass",
	"sessionsstorage":     "SessionsStorageClass",
	"signal":              "SignalClass",
	"smtp transporter":    "SMTPTransporterClass",
	"systemworker":        "SystemWorkerClass",
	"webform":             "WebFormClass",
	"webformitem":         "WebFormItemClass",
	"webserver":           "WebServerClass",
	"websocket":           "WebSocketClass",
	"websocketconnection": "WebSocketConnectionClass",
	"websocketserver":     "WebSocketServerClass",
	"ziparchive":          "ZipArchiveClass",
	"zipfile":             "ZipFileClass",
	"zipfolder":           "ZipFolderClass",
}

// topicPages maps topic keywords to documentation paths.
var topicPages = map[string]string{
	"orda":           "ORDA/overview",
	"variables":      "Concepts/variables",
	"methods":        "Concepts/methods",
	"classes":        "Concepts/classes",
	"parameters":     "Concepts/parameters",
	"shared":         "Concepts/shared",
	"error handling": "Concepts/error-handling",
	"data types":     "Concepts/data-types",
	"collections":    "Concepts/collections",
	"objects":        "Concepts/objects",
	"forms":          "FormEditor/forms",
	"listbox":        "FormObjects/listbox_overview",
	"web server":     "WebServer/webServer",
	"rest":           "REST/gettingStarted",
	"preferences":    "Preferences/overview",
	"users":          "Users/overview",
	"backup":         "Backup/overview",
	"compiler":       "Project/compiler",
	"components":     "Project/components",
	"architecture":   "Project/architecture",
}

var slugCleanRe = regexp.MustCompile(`[^a-z0-9]+`)

// ResolveDoc maps a command, class, or topic query to its documentation URL.
// Topics win over classes; anything unmatched is treated as a command and
// slugged.
func ResolveDoc(query string) DocLink {
	q := strings.TrimSpace(query)
	ql := strings.ToLower(q)
	ql = strings.ReplaceAll(ql, "4d.", "")
	ql = strings.ReplaceAll(ql, "cs.", "")

	for key, path := range topicPages {
		if ql == key || strings.HasPrefix(ql, key) {
			return DocLink{Query: q, Kind: DocTopic, URL: docBaseURL + "/" + path}
		}
	}

	if page, ok := classPages[ql]; ok {
		return DocLink{Query: q, Kind: DocClass, URL: docBaseURL + "/API/" + page}
	}

	// Spaced forms of class names ("imap transporter" typed without a space).
	condensed := strings.ReplaceAll(ql, " ", "")
	for key, page := range classPages {
		if condensed == strings.ReplaceAll(key, " ", "") {
			return DocLink{Query: q, Kind: DocClass, URL: docBaseURL + "/API/" + page}
		}
	}

	return DocLink{Query: q, Kind: DocCommand, URL: docBaseURL + "/commands/" + commandSlug(q)}
}

// commandSlug converts a 4D command name to its URL slug.
func commandSlug(command string) string {
	slug := strings.ToLower(strings.TrimSpace(command))
	slug = slugCleanRe.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
