// Package section defines the recognizable build.gradle sections and the
// ordered registry that the scanner consumes.
//
// The grammars cover the preamble that the Flutter tool and the various app
// generators emit at the top of android/app/build.gradle. Factories are pure:
// constructing a grammar performs no I/O and cannot fail.
package section

import (
	"fmt"

	"github.com/flutterscan/gradlescan/pkg/pattern"
)

// newlineSep matches a newline followed by the indentation of the next line.
func newlineSep() pattern.Matcher {
	return pattern.Seq(pattern.Rune('\n'), pattern.Star(pattern.Rune(' ')))
}

// NewlineRun matches a run of one or more newline characters. Recognizes the
// blank-line separators between sections.
func NewlineRun() pattern.Matcher {
	return pattern.Plus(pattern.Rune('\n'))
}

// Comment matches a single //-style comment line, including its trailing
// newline.
func Comment() pattern.Matcher {
	return pattern.Seq(
		pattern.Star(pattern.Rune(' ')),
		pattern.Literal("//"),
		pattern.Star(pattern.NoneOf("\n")),
		pattern.Rune('\n'),
	)
}

// LegacyPlugins matches the old `plugins` declaration block:
//
//	plugins {
//	    id "com.android.application"
//	    id 'dev.flutter.flutter-gradle-plugin'
//	}
//
// The quote class is checked independently on each side of a plugin id, so a
// mismatched pair like `id "x'` is also accepted. Known looseness, kept as is.
func LegacyPlugins() pattern.Matcher {
	decl := pattern.Seq(
		pattern.Literal("id "),
		pattern.AnyOf(`'"`),
		pattern.Plus(pattern.NoneOf(`'"`)),
		pattern.AnyOf(`'"`),
	)
	return pattern.Seq(
		pattern.Literal("plugins {"),
		newlineSep(),
		pattern.Plus(pattern.Seq(decl, newlineSep())),
		pattern.Literal("}\n"),
	)
}

// PropertiesFileLoad matches the Gradle idiom that loads a .properties file
// into a Properties object:
//
//	def localProperties = new Properties()
//	def localPropertiesFile = rootProject.file('local.properties')
//	if (localPropertiesFile.exists()) {
//	    localPropertiesFile.withReader('UTF-8') { reader ->
//	        localProperties.load(reader)
//	    }
//	}
//
// Two reader styles have coexisted historically; both are accepted:
// `withReader('UTF-8') { reader ->` and `withInputStream { stream ->`.
func PropertiesFileLoad(localVar, fileVar, fileName string) pattern.Matcher {
	return pattern.Seq(
		pattern.Literal(fmt.Sprintf("def %s = new Properties()", localVar)),
		newlineSep(),
		pattern.Literal(fmt.Sprintf("def %s = rootProject.file('%s')", fileVar, fileName)),
		newlineSep(),
		pattern.Literal(fmt.Sprintf("if (%s.exists()) {", fileVar)),
		newlineSep(),
		pattern.Literal(fileVar+"."),
		pattern.Alt(
			pattern.Literal("withReader('UTF-8') { reader ->"),
			pattern.Literal("withInputStream { stream ->"),
		),
		newlineSep(),
		pattern.Literal(localVar+".load("),
		pattern.Alt(pattern.Literal("reader"), pattern.Literal("stream")),
		pattern.Literal(")"),
		newlineSep(),
		pattern.Literal("}\n}\n"),
	)
}

// SDKProperty matches the block that reads a property out of localProperties
// and handles its absence. Two authoring styles exist across app generators
// and both are accepted: a throw statement (GradleException or
// FileNotFoundException, with or without `new`) and a direct fallback
// assignment to a quoted value.
//
// description is a format string whose single %s verb receives key, e.g.
// "location with %s".
func SDKProperty(name, key, label, description string) pattern.Matcher {
	throwBody := pattern.Seq(
		pattern.Literal("throw"),
		pattern.Optional(pattern.Literal(" new")),
		pattern.Literal(" "),
		pattern.Alt(
			pattern.Literal("GradleException"),
			pattern.Literal("FileNotFoundException"),
		),
		pattern.Literal(fmt.Sprintf(`("%s not found. Define %s in the local.properties file.")`,
			label, fmt.Sprintf(description, key))),
	)
	assignBody := pattern.Seq(
		pattern.Literal(name+" = "),
		pattern.AnyOf(`'"`),
		pattern.Plus(pattern.NoneOf(`'"`)),
		pattern.AnyOf(`'"`),
	)
	return pattern.Seq(
		pattern.Literal(fmt.Sprintf("def %s = localProperties.getProperty('%s')", name, key)),
		newlineSep(),
		pattern.Literal(fmt.Sprintf("if (%s == null) {", name)),
		newlineSep(),
		pattern.Alt(throwBody, assignBody),
		newlineSep(),
		pattern.Literal("}\n"),
	)
}
