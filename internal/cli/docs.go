package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	builtindocs "github.com/nbroch/skema/docs"
	"github.com/nbroch/skema/internal/commands"
	"github.com/nbroch/skema/internal/ui"
)

const docsIndexPath = "index.yaml"

var (
	docsSearchLimit   int
	docsSearchSection string

	docsDisplayContext = ui.NewDisplayContext
	docsMarkdownRender = ui.RenderMarkdown
)

type docsSection struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TopicCount int    `json:"topic_count"`
	sortOrder  *int
}

type docsTopic struct {
	Section   string `json:"section"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Path      string `json:"path"`
	fsPath    string
	sortOrder *int
}

type docsMatch struct {
	Section string `json:"section"`
	Topic   string `json:"topic"`
	Title   string `json:"title"`
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Snippet string `json:"snippet"`
}

type docsIndex struct {
	Sections     map[string]docsIndexSection
	SectionOrder map[string]int
}

type docsIndexSection struct {
	Title      string
	Topics     map[string]docsIndexTopic
	TopicOrder map[string]int
}

type docsIndexTopic struct {
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
}

var docsCmd = &cobra.Command{
	Use:   "docs [section] [topic]",
	Short: "Browse bundled Markdown documentation",
	Long: `Browse long-form documentation bundled into the skm binary.

Use this for guides, references, and design notes; for command-level
usage, use 'skm help <command>'.

Examples:
  skm docs
  skm docs guide
  skm docs guide getting-started
  skm docs search "occurrence"
  skm docs commands`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sections, err := listDocsSections()
		if err != nil {
			return handleError(ErrDocsNotFound, err, "Rebuild skm so bundled docs are available")
		}

		if len(args) == 0 {
			return outputDocsSections(sections)
		}

		section, ok := findDocsSection(sections, args[0])
		if !ok {
			return docsSectionNotFound(args, sections)
		}

		topics, err := listDocsTopics(section.ID)
		if err != nil {
			return handleError(ErrDocsNotFound, err, "")
		}

		if len(args) == 1 {
			return outputDocsTopics(section, topics)
		}

		topic, ok := findDocsTopic(topics, args[1])
		if !ok {
			return docsTopicNotFound(section.ID, args[1], topics)
		}

		return outputDocsTopicContent(topic)
	},
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List docs sections and section commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sections, err := listDocsSections()
		if err != nil {
			return handleError(ErrDocsNotFound, err, "Rebuild skm so bundled docs are available")
		}
		return outputDocsSections(sections)
	},
}

var docsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search bundled Markdown documentation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return handleErrorMsg(ErrMissingArgument, "specify a search query", "Usage: skm docs search <query>")
		}
		if docsSearchLimit < 1 {
			return handleErrorMsg(ErrInvalidInput, "--limit must be >= 1", "")
		}

		matches, err := searchDocs(query, docsSearchSection, docsSearchLimit)
		if err != nil {
			return handleError(ErrInvalidInput, err, "Run 'skm docs' to list sections")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"query":   query,
				"matches": matches,
			}, &Meta{Count: len(matches)})
			return nil
		}

		if len(matches) == 0 {
			fmt.Printf("No docs matched %q.\n", query)
			return nil
		}

		fmt.Printf("Matches for %q (%d):\n", query, len(matches))
		for _, m := range matches {
			fmt.Printf("- %s/%s:%d %s\n", m.Section, m.Topic, m.Line, m.Snippet)
		}
		return nil
	},
}

// docsCommandsCmd lists the command registry, the catalog the help
// system itself is generated from.
var docsCommandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List every skm command with its purpose",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := commands.IDs()

		if isJSONOutput() {
			type commandView struct {
				Name            string   `json:"name"`
				Description     string   `json:"description"`
				MutatesDocument bool     `json:"mutates_document"`
				UseCases        []string `json:"use_cases,omitempty"`
			}
			items := make([]commandView, 0, len(ids))
			for _, id := range ids {
				meta := commands.Registry[id]
				items = append(items, commandView{
					Name:            meta.Name,
					Description:     meta.Description,
					MutatesDocument: meta.MutatesDocument,
					UseCases:        meta.UseCases,
				})
			}
			outputSuccess(map[string]interface{}{
				"commands": items,
			}, &Meta{Count: len(items)})
			return nil
		}

		table := ui.NewTable(3)
		for _, id := range ids {
			meta := commands.Registry[id]
			marker := ""
			if meta.MutatesDocument {
				marker = "*"
			}
			table.AddRow(strings.ReplaceAll(meta.Name, "_", " "), marker, meta.Description)
		}
		fmt.Print(table.String())
		fmt.Println()
		fmt.Println(ui.Hint("* mutates the document; see 'skm help <command>' for flags"))
		return nil
	},
}

func outputDocsSections(sections []docsSection) error {
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"sections":       sections,
			"command_docs":   "skm help <command>",
			"navigation_tip": "skm docs <section> <topic>",
		}, &Meta{Count: len(sections)})
		return nil
	}

	fmt.Println("Documentation section commands:")
	for _, s := range sections {
		sectionCommand := fmt.Sprintf("skm docs %s", s.ID)
		fmt.Printf("  %-24s %s (%s)\n", sectionCommand, s.Title, ui.Pluralf(s.TopicCount, "topic"))
	}
	fmt.Println()
	fmt.Println("General docs commands:")
	fmt.Println("  skm docs list                 List sections and section commands")
	fmt.Println("  skm docs <section>            List topics in a section")
	fmt.Println("  skm docs <section> <topic>    Open a docs topic")
	fmt.Println("  skm docs search <query>       Search docs")
	fmt.Println("  skm docs commands             List every skm command")
	return nil
}

func outputDocsTopics(section docsSection, topics []docsTopic) error {
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"section": section.ID,
			"title":   section.Title,
			"topics":  topics,
		}, &Meta{Count: len(topics)})
		return nil
	}

	fmt.Printf("Documentation topic commands for %s [%s]:\n", section.Title, section.ID)
	if len(topics) == 0 {
		fmt.Println("  (no topics)")
		return nil
	}
	for _, t := range topics {
		topicCommand := fmt.Sprintf("skm docs %s %s", section.ID, t.ID)
		fmt.Printf("  %-40s %s\n", topicCommand, t.Title)
	}
	fmt.Println()
	fmt.Printf("  %-40s %s\n", fmt.Sprintf("skm docs search <query> --section %s", section.ID), "Search only this section")
	return nil
}

func outputDocsTopicContent(topic docsTopic) error {
	content, err := fs.ReadFile(builtindocs.FS, topic.fsPath)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"section": topic.Section,
			"topic":   topic.ID,
			"title":   topic.Title,
			"path":    topic.Path,
			"content": string(content),
		}, nil)
		return nil
	}

	rendered := string(content)
	display := docsDisplayContext()
	if display.IsTTY {
		if out, renderErr := docsMarkdownRender(string(content), display.TermWidth); renderErr == nil {
			rendered = out
		}
	}

	fmt.Printf("Path: %s\n\n", topic.Path)
	fmt.Print(rendered)
	if !strings.HasSuffix(rendered, "\n") {
		fmt.Println()
	}
	return nil
}

func docsSectionNotFound(args []string, sections []docsSection) error {
	if cmdPath, ok := resolveCLICommandPath(args); ok {
		return handleErrorMsg(
			ErrInvalidInput,
			fmt.Sprintf("%q is a CLI command, not a docs section", cmdPath),
			fmt.Sprintf("Use 'skm help %s' for command documentation", cmdPath),
		)
	}

	available := make([]string, 0, len(sections))
	for _, s := range sections {
		available = append(available, s.ID)
	}
	sort.Strings(available)

	return handleErrorMsg(
		ErrInvalidInput,
		fmt.Sprintf("unknown docs section: %s", args[0]),
		fmt.Sprintf("Run 'skm docs' to list sections (available: %s)", strings.Join(available, ", ")),
	)
}

func docsTopicNotFound(sectionID, topicInput string, topics []docsTopic) error {
	available := make([]string, 0, len(topics))
	for _, t := range topics {
		available = append(available, t.ID)
	}
	sort.Strings(available)

	suggestion := fmt.Sprintf("Run 'skm docs %s' to list topics", sectionID)
	if len(available) > 0 {
		suggestion = fmt.Sprintf("%s (available: %s)", suggestion, strings.Join(available, ", "))
	}

	return handleErrorMsg(
		ErrInvalidInput,
		fmt.Sprintf("unknown topic %q in section %q", topicInput, sectionID),
		suggestion,
	)
}

func listDocsSections() ([]docsSection, error) {
	return listDocsSectionsFS(builtindocs.FS)
}

func listDocsSectionsFS(docsFS fs.FS) ([]docsSection, error) {
	index, err := loadDocsIndexFS(docsFS)
	if err != nil {
		return nil, err
	}
	if len(index.Sections) == 0 {
		return nil, fmt.Errorf("docs index has no sections")
	}

	sections := make([]docsSection, 0, len(index.Sections))
	for sectionID, meta := range index.Sections {
		topics, err := listDocsTopicsWithIndexFS(docsFS, sectionID, index)
		if err != nil {
			return nil, err
		}
		title := titleFromSlug(sectionID)
		if override := strings.TrimSpace(meta.Title); override != "" {
			title = override
		}
		sections = append(sections, docsSection{
			ID:         sectionID,
			Title:      title,
			TopicCount: len(topics),
			sortOrder:  docsSortOrder(index.SectionOrder, sectionID),
		})
	}

	sort.Slice(sections, func(i, j int) bool {
		return docsSortLess(sections[i].sortOrder, sections[j].sortOrder, sections[i].ID, sections[j].ID)
	})
	return sections, nil
}

func listDocsTopics(section string) ([]docsTopic, error) {
	return listDocsTopicsFS(builtindocs.FS, section)
}

func listDocsTopicsFS(docsFS fs.FS, section string) ([]docsTopic, error) {
	index, err := loadDocsIndexFS(docsFS)
	if err != nil {
		return nil, err
	}
	return listDocsTopicsWithIndexFS(docsFS, section, index)
}

func listDocsTopicsWithIndexFS(docsFS fs.FS, section string, index docsIndex) ([]docsTopic, error) {
	sectionMeta, ok := index.Sections[section]
	if !ok {
		return nil, fmt.Errorf("section %q is not declared in docs index", section)
	}

	info, err := fs.Stat(docsFS, section)
	if err != nil {
		return nil, fmt.Errorf("section %q not found: %w", section, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("section path %q is not a directory", section)
	}

	topics := make([]docsTopic, 0, len(sectionMeta.Topics))
	seenPaths := make(map[string]string)

	for topicID, meta := range sectionMeta.Topics {
		relPath, fsPath, err := resolveDocsTopicPath(section, meta.Path)
		if err != nil {
			return nil, fmt.Errorf("docs index topic %q in section %q: %w", topicID, section, err)
		}
		if previousID, exists := seenPaths[relPath]; exists {
			return nil, fmt.Errorf("docs index section %q maps duplicate path %q to topics %q and %q", section, relPath, previousID, topicID)
		}
		seenPaths[relPath] = topicID

		fileInfo, err := fs.Stat(docsFS, fsPath)
		if err != nil {
			return nil, fmt.Errorf("docs index topic %q in section %q points to missing file %q: %w", topicID, section, relPath, err)
		}
		if fileInfo.IsDir() {
			return nil, fmt.Errorf("docs index topic %q in section %q path %q is a directory", topicID, section, relPath)
		}

		title := extractDocsTitleFS(docsFS, fsPath, topicID)
		if override := strings.TrimSpace(meta.Title); override != "" {
			title = override
		}
		topics = append(topics, docsTopic{
			Section:   section,
			ID:        topicID,
			Title:     title,
			Path:      path.Join("docs", section, relPath),
			fsPath:    fsPath,
			sortOrder: docsSortOrder(sectionMeta.TopicOrder, topicID),
		})
	}

	sort.Slice(topics, func(i, j int) bool {
		return docsSortLess(topics[i].sortOrder, topics[j].sortOrder, topics[i].ID, topics[j].ID)
	})
	return topics, nil
}

// loadDocsIndexFS decodes index.yaml by walking the YAML nodes directly:
// declaration order in the file is the display order, which a plain map
// decode would lose.
func loadDocsIndexFS(docsFS fs.FS) (docsIndex, error) {
	index := docsIndex{
		Sections:     make(map[string]docsIndexSection),
		SectionOrder: make(map[string]int),
	}
	raw, err := fs.ReadFile(docsFS, docsIndexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return docsIndex{}, fmt.Errorf("docs index not found at %s", docsIndexPath)
		}
		return docsIndex{}, fmt.Errorf("read docs index: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return docsIndex{}, fmt.Errorf("parse docs index: %w", err)
	}
	if len(root.Content) == 0 {
		return index, nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return docsIndex{}, fmt.Errorf("parse docs index: top-level YAML must be a mapping")
	}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key := strings.TrimSpace(top.Content[i].Value)
		value := top.Content[i+1]
		switch key {
		case "sections":
			if err := decodeDocsSectionsNode(value, &index); err != nil {
				return docsIndex{}, fmt.Errorf("parse docs index sections: %w", err)
			}
		default:
			return docsIndex{}, fmt.Errorf("parse docs index: unknown top-level field %q", key)
		}
	}
	return index, nil
}

func decodeDocsSectionsNode(node *yaml.Node, index *docsIndex) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("sections must be a mapping")
	}

	position := 0
	for i := 0; i+1 < len(node.Content); i += 2 {
		sectionID := strings.TrimSpace(node.Content[i].Value)
		if sectionID == "" {
			return fmt.Errorf("sections contains an empty section key")
		}
		if normalizeDocsSegment(sectionID) != sectionID {
			return fmt.Errorf("section id %q must use normalized slug format", sectionID)
		}
		if _, exists := index.Sections[sectionID]; exists {
			return fmt.Errorf("duplicate section %q", sectionID)
		}

		sectionNode := node.Content[i+1]
		if sectionNode.Kind != yaml.MappingNode {
			return fmt.Errorf("section %q must be a mapping", sectionID)
		}

		section := docsIndexSection{
			Topics:     make(map[string]docsIndexTopic),
			TopicOrder: make(map[string]int),
		}
		hasTopics := false
		for j := 0; j+1 < len(sectionNode.Content); j += 2 {
			field := strings.TrimSpace(sectionNode.Content[j].Value)
			value := sectionNode.Content[j+1]
			switch field {
			case "title":
				var title string
				if err := value.Decode(&title); err != nil {
					return fmt.Errorf("section %q field %q: %w", sectionID, field, err)
				}
				section.Title = strings.TrimSpace(title)
			case "topics":
				if err := decodeDocsTopicsNode(value, sectionID, &section); err != nil {
					return err
				}
				hasTopics = true
			default:
				return fmt.Errorf("section %q has unknown field %q", sectionID, field)
			}
		}
		if !hasTopics {
			return fmt.Errorf("section %q is missing required field \"topics\"", sectionID)
		}

		index.Sections[sectionID] = section
		index.SectionOrder[sectionID] = position
		position++
	}
	return nil
}

func decodeDocsTopicsNode(node *yaml.Node, sectionID string, section *docsIndexSection) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("section %q topics must be a mapping", sectionID)
	}

	position := 0
	for i := 0; i+1 < len(node.Content); i += 2 {
		topicID := strings.TrimSpace(node.Content[i].Value)
		if topicID == "" {
			return fmt.Errorf("section %q topics contains an empty topic key", sectionID)
		}
		if normalizeDocsSegment(topicID) != topicID {
			return fmt.Errorf("topic id %q in section %q must use normalized slug format", topicID, sectionID)
		}
		if _, exists := section.Topics[topicID]; exists {
			return fmt.Errorf("duplicate topic %q in section %q", topicID, sectionID)
		}

		var meta docsIndexTopic
		if err := node.Content[i+1].Decode(&meta); err != nil {
			return fmt.Errorf("topic %q metadata in section %q: %w", topicID, sectionID, err)
		}
		meta.Title = strings.TrimSpace(meta.Title)
		meta.Path = strings.TrimSpace(meta.Path)
		if meta.Path == "" {
			return fmt.Errorf("topic %q in section %q is missing required field \"path\"", topicID, sectionID)
		}

		section.Topics[topicID] = meta
		section.TopicOrder[topicID] = position
		position++
	}

	if len(section.Topics) == 0 {
		return fmt.Errorf("section %q has an empty topics mapping", sectionID)
	}
	return nil
}

func resolveDocsTopicPath(section, rawPath string) (string, string, error) {
	relPath := strings.ReplaceAll(strings.TrimSpace(rawPath), "\\", "/")
	if relPath == "" {
		return "", "", fmt.Errorf("missing required field \"path\"")
	}
	cleanPath := path.Clean(relPath)
	if cleanPath == "." || cleanPath == "/" {
		return "", "", fmt.Errorf("invalid topic path %q", relPath)
	}
	if strings.HasPrefix(cleanPath, "/") || cleanPath == ".." || strings.HasPrefix(cleanPath, "../") {
		return "", "", fmt.Errorf("topic path %q must be relative to the section directory", relPath)
	}
	if !strings.HasSuffix(strings.ToLower(cleanPath), ".md") {
		return "", "", fmt.Errorf("topic path %q must end with .md", relPath)
	}
	for _, segment := range strings.Split(cleanPath, "/") {
		if segment == "" || strings.HasPrefix(segment, ".") || strings.HasPrefix(segment, "_") {
			return "", "", fmt.Errorf("topic path %q includes hidden/private segment %q", relPath, segment)
		}
	}
	return cleanPath, path.Join(section, cleanPath), nil
}

func docsSortOrder(orderByID map[string]int, id string) *int {
	order, ok := orderByID[id]
	if !ok {
		return nil
	}
	out := order
	return &out
}

func docsSortLess(orderA, orderB *int, idA, idB string) bool {
	if orderA == nil && orderB == nil {
		return idA < idB
	}
	if orderA == nil {
		return false
	}
	if orderB == nil {
		return true
	}
	if *orderA != *orderB {
		return *orderA < *orderB
	}
	return idA < idB
}

func findDocsSection(sections []docsSection, raw string) (docsSection, bool) {
	needle := normalizeDocsSegment(raw)
	for _, section := range sections {
		if section.ID == needle {
			return section, true
		}
	}
	return docsSection{}, false
}

func findDocsTopic(topics []docsTopic, raw string) (docsTopic, bool) {
	needle := normalizeDocsSegment(strings.TrimSuffix(strings.TrimSpace(raw), ".md"))
	for _, topic := range topics {
		if topic.ID == needle {
			return topic, true
		}
	}
	return docsTopic{}, false
}

func searchDocs(query, sectionFilter string, limit int) ([]docsMatch, error) {
	return searchDocsFS(builtindocs.FS, query, sectionFilter, limit)
}

func searchDocsFS(docsFS fs.FS, query, sectionFilter string, limit int) ([]docsMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}
	if limit < 1 {
		return nil, fmt.Errorf("limit must be >= 1")
	}

	sections, err := listDocsSectionsFS(docsFS)
	if err != nil {
		return nil, err
	}

	selected := sections
	if strings.TrimSpace(sectionFilter) != "" {
		section, ok := findDocsSection(sections, sectionFilter)
		if !ok {
			return nil, fmt.Errorf("unknown section: %s", sectionFilter)
		}
		selected = []docsSection{section}
	}

	queryLower := strings.ToLower(query)
	matches := make([]docsMatch, 0, limit)

	for _, section := range selected {
		topics, err := listDocsTopicsFS(docsFS, section.ID)
		if err != nil {
			return nil, err
		}

		for _, topic := range topics {
			content, err := fs.ReadFile(docsFS, topic.fsPath)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", topic.Path, err)
			}

			for i, line := range strings.Split(string(content), "\n") {
				if !strings.Contains(strings.ToLower(line), queryLower) {
					continue
				}
				matches = append(matches, docsMatch{
					Section: section.ID,
					Topic:   topic.ID,
					Title:   topic.Title,
					Path:    topic.Path,
					Line:    i + 1,
					Snippet: shortenDocsSnippet(line, queryLower),
				})
				if len(matches) >= limit {
					return matches, nil
				}
			}
		}
	}
	return matches, nil
}

func shortenDocsSnippet(line, queryLower string) string {
	const maxLen = 160
	snippet := strings.TrimSpace(line)
	if snippet == "" {
		return "(blank line)"
	}
	if len(snippet) <= maxLen {
		return snippet
	}

	idx := strings.Index(strings.ToLower(snippet), queryLower)
	if idx < 0 {
		return snippet[:maxLen-1] + "..."
	}

	start := idx - 50
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > len(snippet) {
		end = len(snippet)
	}
	out := snippet[start:end]
	if start > 0 {
		out = "..." + out
	}
	if end < len(snippet) {
		out += "..."
	}
	return out
}

func extractDocsTitleFS(docsFS fs.FS, docsPath, fallbackSlug string) string {
	f, err := docsFS.Open(docsPath)
	if err != nil {
		return titleFromSlug(path.Base(fallbackSlug))
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "# ") {
			if title := strings.TrimSpace(strings.TrimPrefix(line, "# ")); title != "" {
				return title
			}
		}
	}
	return titleFromSlug(path.Base(fallbackSlug))
}

func normalizeDocsSegment(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

func titleFromSlug(slug string) string {
	parts := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return slug
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func resolveCLICommandPath(args []string) (string, bool) {
	for i := len(args); i >= 1; i-- {
		cmdPath := strings.Join(args[:i], " ")
		cmd, ok := findCommandByPath(rootCmd, cmdPath)
		if !ok {
			continue
		}
		// Don't redirect docs->docs.
		if cmd.Name() == "docs" {
			continue
		}
		return cmdPath, true
	}
	return "", false
}

func findCommandByPath(root *cobra.Command, cmdPath string) (*cobra.Command, bool) {
	parts := strings.Fields(cmdPath)
	if len(parts) == 0 {
		return nil, false
	}

	cur := root
	for _, part := range parts {
		var next *cobra.Command
		for _, child := range cur.Commands() {
			if child.Name() == part {
				next = child
				break
			}
		}
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func init() {
	docsSearchCmd.Flags().IntVarP(&docsSearchLimit, "limit", "n", 20, "Maximum number of matches")
	docsSearchCmd.Flags().StringVarP(&docsSearchSection, "section", "s", "", "Filter search to a docs section")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsSearchCmd)
	docsCmd.AddCommand(docsCommandsCmd)
	rootCmd.AddCommand(docsCmd)
}
