package doctree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned when a sub-record omits a field the
// builder requires, such as a method without a description.
var ErrMissingField = errors.New("missing required field")

// documentKeys is the recognized top-level section vocabulary. The
// leading newline anchors each match at a line start so that, say, a
// "description:" inside running text does not open a new section.
// last_update, draft, see_also and categories only act as delimiters;
// their content is not carried into the tree.
var documentKeys = []string{
	"\ntitle", "\ndescription", "\npdcategory", "\ncategories",
	"\nflags", "\narguments", "\nlast_update", "\ninlets",
	"\noutlets", "\ndraft", "\nsee_also", "\nmethods",
}

// ordinalKeys labels inlet and outlet positions. "nth" means the iolet
// repeats at a variable position.
var ordinalKeys = []string{"1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th", "nth"}

// titleCutset is what the original tool strips from each object name.
const titleCutset = "'\"\n\f\r\t "

// BuildObjects parses one markdown document and appends the resulting
// object nodes to root. A document without a title section is not an
// error; it is skipped silently. The title may name several objects
// separated by commas; each gets its own node sharing the same
// description.
//
// Every object node carries five container children in fixed order:
// iolets, categories, arguments, methods, flags. Containers stay empty
// when the corresponding section is absent.
func BuildObjects(root *Node, markdown string) error {
	// A key on the very first line has no preceding newline to anchor on.
	sections := SplitSections("\n"+markdown, documentKeys)

	title, ok := sections.Lookup("title")
	if !ok {
		return nil
	}
	description, _ := sections.Lookup("description")

	for _, name := range strings.Split(title, ",") {
		object := NewNode("object")
		object.Set("name", strings.Trim(name, titleCutset))
		object.Set("description", description)
		root.Append(object)

		iolets := NewNode("iolets")
		categories := NewNode("categories")
		arguments := NewNode("arguments")
		methods := NewNode("methods")
		flags := NewNode("flags")
		object.Append(iolets)
		object.Append(categories)
		object.Append(arguments)
		object.Append(methods)
		object.Append(flags)

		if text, ok := sections.Lookup("methods"); ok {
			if err := buildMethods(methods, text); err != nil {
				return err
			}
		}
		if text, ok := sections.Lookup("pdcategory"); ok {
			for _, item := range strings.Split(text, ",") {
				category := NewNode("category")
				category.Set("name", strings.TrimSpace(item))
				categories.Append(category)
			}
		}
		if text, ok := sections.Lookup("arguments"); ok {
			if err := buildArguments(arguments, text); err != nil {
				return err
			}
		}
		if text, ok := sections.Lookup("flags"); ok {
			if err := buildFlags(flags, text); err != nil {
				return err
			}
		}
		if text, ok := sections.Lookup("inlets"); ok {
			if err := buildIOLets(iolets, "inlet", text); err != nil {
				return err
			}
		}
		if text, ok := sections.Lookup("outlets"); ok {
			if err := buildIOLets(iolets, "outlet", text); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildMethods appends one method node per hyphen block. The method
// label comes from the block's type field, falling back to name; blocks
// with neither are skipped. A labeled block without a description is a
// hard error.
func buildMethods(parent *Node, text string) error {
	for _, block := range SplitHyphens(text) {
		fields := SplitSections(block, []string{"name", "type", "description"})

		label, ok := fields.Lookup("type")
		if !ok {
			label, ok = fields.Lookup("name")
		}
		if !ok {
			continue
		}

		description, ok := fields.Lookup("description")
		if !ok {
			return fmt.Errorf("method %q: %w: description", label, ErrMissingField)
		}

		method := NewNode("method")
		method.Set("type", label)
		method.Set("description", description)
		parent.Append(method)
	}
	return nil
}

func buildArguments(parent *Node, text string) error {
	for _, block := range SplitHyphens(text) {
		fields := SplitSections(block, []string{"type", "description", "default"})

		typ, ok := fields.Lookup("type")
		if !ok {
			return fmt.Errorf("argument: %w: type", ErrMissingField)
		}
		description, ok := fields.Lookup("description")
		if !ok {
			return fmt.Errorf("argument %q: %w: description", typ, ErrMissingField)
		}
		defaultValue, _ := fields.Lookup("default")

		argument := NewNode("argument")
		argument.Set("type", typ)
		argument.Set("description", description)
		argument.Set("default", defaultValue)
		parent.Append(argument)
	}
	return nil
}

func buildFlags(parent *Node, text string) error {
	for _, block := range SplitHyphens(text) {
		fields := SplitSections(block, []string{"name", "description"})

		name, ok := fields.Lookup("name")
		if !ok {
			return fmt.Errorf("flag: %w: name", ErrMissingField)
		}
		description, _ := fields.Lookup("description")

		flag := NewNode("flag")
		flag.Set("name", name)
		flag.Set("description", description)
		parent.Append(flag)
	}
	return nil
}

// buildIOLets appends one node per ordinal found in an inlets or outlets
// section, in order of appearance. Each node's tooltip concatenates
// "(type) description" lines for every hyphen item under that ordinal.
func buildIOLets(iolets *Node, tag, text string) error {
	ordinals := SplitSections(text, ordinalKeys)
	for _, ordinal := range ordinals.Keys() {
		content, _ := ordinals.Lookup(ordinal)

		iolet := NewNode(tag)
		variable := "0"
		if ordinal == "nth" {
			variable = "1"
		}
		iolet.Set("variable", variable)

		var tip strings.Builder
		for _, block := range SplitHyphens(content) {
			fields := SplitSections(block, []string{"type", "description"})

			typ, ok := fields.Lookup("type")
			if !ok {
				return fmt.Errorf("%s %s: %w: type", ordinal, tag, ErrMissingField)
			}
			description, ok := fields.Lookup("description")
			if !ok {
				return fmt.Errorf("%s %s: %w: description", ordinal, tag, ErrMissingField)
			}

			tip.WriteString("(" + typ + ") " + description + "\n")
		}
		iolet.Set("tooltip", tip.String())
		iolets.Append(iolet)
	}
	return nil
}
