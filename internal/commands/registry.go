// Package commands provides a central registry of skm CLI commands.
// The registry is the single source of truth for command metadata,
// used to keep Cobra help text and the bundled docs in sync.
package commands

// Meta defines metadata for a CLI command.
type Meta struct {
	Name            string     // Command name (e.g., "apply", "addr_parse")
	Description     string     // Short description
	LongDesc        string     // Long description (for --help)
	Args            []ArgMeta  // Positional arguments
	Flags           []FlagMeta // Command flags
	Examples        []string   // Usage examples
	UseCases        []string   // Agent use cases (for --json consumers)
	MutatesDocument bool       // Whether the command can modify a schema document
}

// ArgMeta defines a positional argument.
type ArgMeta struct {
	Name        string // Argument name
	Description string // Description
	Required    bool   // Is this argument required?
}

// FlagMeta defines a command flag.
type FlagMeta struct {
	Name        string   // Flag name (e.g., "listen", "limit")
	Short       string   // Short flag (e.g., "o" for -o)
	Description string   // Description
	Type        FlagType // Type of flag
	Default     string   // Default value
	Examples    []string // Example values
}

// FlagType represents the type of a flag.
type FlagType string

const (
	FlagTypeString      FlagType = "string"
	FlagTypeBool        FlagType = "bool"
	FlagTypeInt         FlagType = "int"
	FlagTypeStringSlice FlagType = "stringSlice" // For repeatable string flags
)

// Registry holds all registered commands.
var Registry = map[string]Meta{
	"serve": {
		Name:        "serve",
		Description: "Host a schema document for an editor frontend",
		LongDesc: `Hosts a schema document and processes editing commands from a
connected frontend.

The host owns the document: clients never touch the file directly. They
send commands ("addElement", "modifyAttribute", ...) and receive the full
updated schema after every change. Command results are reported over the
same connection.

Two transports are available:
  --stdio    newline-delimited JSON over stdin/stdout (for embedding;
             stdout carries protocol messages only, logs go to stderr)
  --listen   WebSocket server on the given address

After every successful command the document is written back to disk
atomically (disable with --no-save). With journaling enabled (the
default), every executed command is also recorded to a SQLite journal.
Inspect a session later with 'skm journal list'.`,
		Args: []ArgMeta{
			{Name: "document", Description: "Schema document to host (.json or .yaml)", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "stdio", Description: "Serve over stdin/stdout (newline-delimited JSON)", Type: FlagTypeBool},
			{Name: "listen", Description: "WebSocket listen address (host:port)", Type: FlagTypeString, Examples: []string{"127.0.0.1:7433"}},
			{Name: "journal", Description: "Journal database path (overrides config)", Type: FlagTypeString},
			{Name: "no-journal", Description: "Disable command journaling", Type: FlagTypeBool},
			{Name: "no-save", Description: "Keep edits in memory; do not write the document back", Type: FlagTypeBool},
			{Name: "watch", Description: "Reload the document when the file changes on disk", Type: FlagTypeBool},
			{Name: "debug", Description: "Log protocol traffic to stderr", Type: FlagTypeBool},
		},
		Examples: []string{
			"skm serve schema.json --stdio",
			"skm serve schema.json --listen 127.0.0.1:7433",
			"skm serve schema.json --stdio --watch --debug",
		},
		UseCases: []string{
			"Run the document host behind a visual schema editor",
			"Record an editing session for later inspection",
		},
		MutatesDocument: true,
	},
	"addr_parse": {
		Name:        "addr_parse",
		Description: "Parse a node address into its components",
		LongDesc: `Parses a node address and reports its components: kind, local name,
namespace, position, parent address, and raw segments.

Node addresses identify schema nodes structurally, like a file path:
'/element:person/attribute:id[0]' is the first attribute named "id" under
the top-level element "person". Namespace-qualified names use Clark
notation: '/element:{http://example.com/ns}item'.

Parsing is purely syntactic. An address can be well-formed without any
node existing at it in a given document.`,
		Args: []ArgMeta{
			{Name: "address", Description: "Node address to parse", Required: true},
		},
		Examples: []string{
			"skm addr parse /element:person --json",
			"skm addr parse '/element:person/attribute:id[0]' --json",
			"skm addr parse '/element:{http://example.com/ns}item' --json",
		},
		UseCases: []string{
			"Inspect what a stored address points at",
			"Debug address mismatches between editor and host",
		},
	},
	"addr_gen": {
		Name:        "addr_gen",
		Description: "Generate a node address from components",
		LongDesc: `Generates a node address from a kind, an optional name, and optional
parent/position/namespace components.

The output is canonical: parsing it yields back the same components.
Anonymous kinds (anonymousComplexType, anonymousSimpleType) take no name.
Position is zero-based within the parent's children of the same kind and
name.`,
		Args: []ArgMeta{
			{Name: "kind", Description: "Node kind (element, attribute, complexType, ...)", Required: true},
			{Name: "name", Description: "Local name (omit for anonymous kinds)"},
		},
		Flags: []FlagMeta{
			{Name: "parent", Description: "Parent address to append to", Type: FlagTypeString, Examples: []string{"/element:person"}},
			{Name: "position", Description: "Zero-based position among same-kind siblings", Type: FlagTypeInt, Default: "-1"},
			{Name: "namespace", Description: "Namespace URI for the name", Type: FlagTypeString},
		},
		Examples: []string{
			"skm addr gen element person",
			"skm addr gen attribute id --parent /element:person --position 0",
			"skm addr gen element item --namespace http://example.com/ns",
		},
		UseCases: []string{
			"Build addresses for command payloads without string concatenation",
		},
	},
	"addr_parent": {
		Name:        "addr_parent",
		Description: "Print the parent of a node address",
		LongDesc: `Prints the parent address of a node address, i.e. the address with its
last segment removed. The schema root '/schema' has no parent.`,
		Args: []ArgMeta{
			{Name: "address", Description: "Node address", Required: true},
		},
		Examples: []string{
			"skm addr parent '/element:person/attribute:id[0]'",
		},
	},
	"check": {
		Name:        "check",
		Description: "Validate command payloads without applying them",
		LongDesc: `Validates one or more editing commands against the payload rules: XML
name syntax, occurrence constraints, required addresses, and mutually
exclusive field combinations.

Reads a JSON file containing either a single command object or an array
of commands. With no file argument (or '-'), reads from stdin. Commands
are checked in isolation; nothing is applied to any document, so checks
that need document state (duplicate names, dangling references) are out
of scope here and happen on apply.

Exits non-zero if any command is invalid.`,
		Args: []ArgMeta{
			{Name: "file", Description: "Command JSON file (defaults to stdin)"},
		},
		Examples: []string{
			"skm check commands.json",
			"echo '{\"type\":\"addElement\",\"payload\":{\"parent\":\"/schema\",\"name\":\"person\",\"type\":\"xs:string\"}}' | skm check --json",
		},
		UseCases: []string{
			"Validate generated commands before sending them to a host",
			"Lint a recorded command file in CI",
		},
	},
	"apply": {
		Name:        "apply",
		Description: "Apply command files to a schema document",
		LongDesc: `Applies editing commands to a schema document offline, without a running
host. Command files are applied in argument order; each file holds a
single command object or an array of commands.

Commands go through the same validation and execution path as the host.
Application stops at the first rejected command and the document is left
untouched; use --dry-run to see the full result set without writing.

The modified document is written back in place, or to --out.`,
		Args: []ArgMeta{
			{Name: "document", Description: "Schema document to modify (.json or .yaml)", Required: true},
			{Name: "commands", Description: "Command file(s) to apply in order", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "out", Short: "o", Description: "Write the result here instead of modifying in place", Type: FlagTypeString},
			{Name: "dry-run", Description: "Report results without writing the document", Type: FlagTypeBool},
			{Name: "journal", Description: "Record applied commands to this journal database", Type: FlagTypeString},
		},
		Examples: []string{
			"skm apply schema.json add-person.json",
			"skm apply schema.json session/*.json --dry-run",
			"skm apply schema.json edits.json -o schema-new.json",
		},
		UseCases: []string{
			"Replay a recorded editing session against a document",
			"Script bulk schema edits without a frontend",
		},
		MutatesDocument: true,
	},
	"tree": {
		Name:        "tree",
		Description: "Render a schema document as a tree",
		LongDesc: `Renders the node tree of a schema document: kinds, names, types,
occurrence ranges, and documentation, laid out with box-drawing
characters.

Display toggles default to the diagram settings in config.toml and can
be overridden per invocation. With --json the raw nested snapshot is
emitted instead.`,
		Args: []ArgMeta{
			{Name: "document", Description: "Schema document to render (.json or .yaml)", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "depth", Description: "Maximum depth to render (0 = unlimited)", Type: FlagTypeInt, Default: "0"},
			{Name: "types", Description: "Show node types", Type: FlagTypeBool},
			{Name: "occurrences", Description: "Show occurrence ranges", Type: FlagTypeBool},
			{Name: "documentation", Description: "Show documentation text", Type: FlagTypeBool},
			{Name: "compact", Description: "Skip empty structural nodes", Type: FlagTypeBool},
		},
		Examples: []string{
			"skm tree schema.json",
			"skm tree schema.json --depth 2 --types",
			"skm tree schema.json --json",
		},
		UseCases: []string{
			"Eyeball a document's structure without the visual editor",
		},
	},
	"doc_init": {
		Name:        "doc_init",
		Description: "Create a new empty schema document",
		LongDesc: `Creates a new schema document containing only the root schema node.
The file extension picks the format: .json or .yaml/.yml.

Refuses to overwrite an existing file unless --force is given.`,
		Args: []ArgMeta{
			{Name: "file", Description: "Path for the new document", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "name", Description: "Schema name", Type: FlagTypeString, Default: "schema"},
			{Name: "namespace", Description: "Target namespace URI", Type: FlagTypeString},
			{Name: "force", Description: "Overwrite an existing file", Type: FlagTypeBool},
		},
		Examples: []string{
			"skm doc init schema.json",
			"skm doc init order.yaml --name order --namespace http://example.com/order",
		},
		MutatesDocument: true,
	},
	"doc_export": {
		Name:        "doc_export",
		Description: "Convert a schema document between JSON and YAML",
		LongDesc: `Reads a schema document and writes it to a new path, converting between
JSON and YAML based on the output extension. The node tree is preserved
exactly; only the serialization changes.`,
		Args: []ArgMeta{
			{Name: "in", Description: "Source document", Required: true},
			{Name: "out", Description: "Destination path (.json or .yaml)", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "force", Description: "Overwrite an existing destination", Type: FlagTypeBool},
		},
		Examples: []string{
			"skm doc export schema.json schema.yaml",
			"skm doc export schema.yaml build/schema.json --force",
		},
	},
	"suggest": {
		Name:        "suggest",
		Description: "Suggest a valid XML name from a label",
		LongDesc: `Turns a free-form label into a valid XML name: 'Order Line Item'
becomes 'orderLineItem'. With --type, produces an upper-camel type name
with a 'Type' suffix instead: 'OrderLineItemType'.

Useful when an editor lets users type display labels and needs
schema-legal names behind them.`,
		Args: []ArgMeta{
			{Name: "label", Description: "Free-form label", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "type", Description: "Suggest a type name (UpperCamel + Type suffix)", Type: FlagTypeBool},
		},
		Examples: []string{
			"skm suggest \"Order Line Item\"",
			"skm suggest \"Order Line Item\" --type",
		},
		UseCases: []string{
			"Derive element names from user-entered labels",
		},
	},
	"journal_list": {
		Name:        "journal_list",
		Description: "List journaled commands",
		LongDesc: `Lists commands recorded in a journal database, newest first.

Filter by command tag (repeatable --command), by execution date
(--since takes 'today', 'yesterday', or YYYY-MM-DD), or to failures
only. The journal path comes from config.toml unless --journal is
given.`,
		Flags: []FlagMeta{
			{Name: "journal", Description: "Journal database path (overrides config)", Type: FlagTypeString},
			{Name: "limit", Short: "n", Description: "Maximum entries to list (0 = all)", Type: FlagTypeInt, Default: "50"},
			{Name: "command", Description: "Filter by command tag (repeatable)", Type: FlagTypeStringSlice, Examples: []string{"addElement", "removeAttribute"}},
			{Name: "since", Description: "Only entries executed on or after this date", Type: FlagTypeString, Examples: []string{"today", "yesterday", "2026-08-01"}},
			{Name: "failed", Description: "Only rejected commands", Type: FlagTypeBool},
		},
		Examples: []string{
			"skm journal list",
			"skm journal list --command addElement --command removeElement",
			"skm journal list --since yesterday --failed",
		},
		UseCases: []string{
			"Audit what an editing session did to a document",
			"Find the failing command in a broken session",
		},
	},
	"journal_show": {
		Name:        "journal_show",
		Description: "Show one journaled command in full",
		LongDesc: `Shows a single journal entry: command tag, execution time, outcome,
resulting address, and the full payload JSON. The text output includes a
shell-ready line for replaying the command through 'skm check'.`,
		Args: []ArgMeta{
			{Name: "id", Description: "Entry id (ULID from 'journal list')", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "journal", Description: "Journal database path (overrides config)", Type: FlagTypeString},
		},
		Examples: []string{
			"skm journal show 01J5KQJ9ZJW10M8YT1QPXVW9GA",
		},
	},
}
