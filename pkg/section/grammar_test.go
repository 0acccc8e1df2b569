package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const localPropertiesReader = "def localProperties = new Properties()\n" +
	"def localPropertiesFile = rootProject.file('local.properties')\n" +
	"if (localPropertiesFile.exists()) {\n" +
	"    localPropertiesFile.withReader('UTF-8') { reader ->\n" +
	"        localProperties.load(reader)\n" +
	"    }\n" +
	"}\n"

const localPropertiesStream = "def localProperties = new Properties()\n" +
	"def localPropertiesFile = rootProject.file('local.properties')\n" +
	"if (localPropertiesFile.exists()) {\n" +
	"    localPropertiesFile.withInputStream { stream ->\n" +
	"        localProperties.load(stream)\n" +
	"    }\n" +
	"}\n"

func TestComment(t *testing.T) {
	m := Comment()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain", "// a comment\nnext", true},
		{"indented", "    // indented\n", true},
		{"empty comment", "//\n", true},
		{"no newline", "// unterminated", false},
		{"not a comment", "android {\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := m.Match(tt.input, 0)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestNewlineRun(t *testing.T) {
	m := NewlineRun()

	end, ok := m.Match("\n\n\nandroid", 0)
	require.True(t, ok)
	assert.Equal(t, 3, end)

	_, ok = m.Match("android", 0)
	assert.False(t, ok)
}

func TestLegacyPlugins(t *testing.T) {
	m := LegacyPlugins()

	input := "plugins {\n" +
		"    id \"com.android.application\"\n" +
		"    id 'dev.flutter.flutter-gradle-plugin'\n" +
		"}\n"
	end, ok := m.Match(input, 0)
	require.True(t, ok)
	assert.Equal(t, len(input), end)

	// At least one plugin declaration is required.
	_, ok = m.Match("plugins {\n}\n", 0)
	assert.False(t, ok)
}

func TestLegacyPlugins_MismatchedQuotesAccepted(t *testing.T) {
	// The quote class is independent on each side; this looseness is
	// deliberate and documented on the factory.
	m := LegacyPlugins()

	input := "plugins {\n    id \"kotlin-android'\n}\n"
	_, ok := m.Match(input, 0)
	assert.True(t, ok)
}

func TestPropertiesFileLoad_ReaderStyle(t *testing.T) {
	m := PropertiesFileLoad("localProperties", "localPropertiesFile", "local.properties")

	end, ok := m.Match(localPropertiesReader, 0)
	require.True(t, ok)
	assert.Equal(t, len(localPropertiesReader), end)
}

func TestPropertiesFileLoad_StreamStyle(t *testing.T) {
	m := PropertiesFileLoad("localProperties", "localPropertiesFile", "local.properties")

	end, ok := m.Match(localPropertiesStream, 0)
	require.True(t, ok)
	assert.Equal(t, len(localPropertiesStream), end)
}

func TestPropertiesFileLoad_Parameterized(t *testing.T) {
	m := PropertiesFileLoad("keystoreProperties", "keystorePropertiesFile", "key.properties")

	input := "def keystoreProperties = new Properties()\n" +
		"def keystorePropertiesFile = rootProject.file('key.properties')\n" +
		"if (keystorePropertiesFile.exists()) {\n" +
		"    keystorePropertiesFile.withReader('UTF-8') { reader ->\n" +
		"        keystoreProperties.load(reader)\n" +
		"    }\n" +
		"}\n"
	end, ok := m.Match(input, 0)
	require.True(t, ok)
	assert.Equal(t, len(input), end)

	// The local.properties text must not match the key.properties grammar.
	_, ok = m.Match(localPropertiesReader, 0)
	assert.False(t, ok)
}

func TestSDKProperty_ThrowStyles(t *testing.T) {
	m := SDKProperty("flutterRoot", "flutter.sdk", "Flutter SDK", "location with %s")

	message := `("Flutter SDK not found. Define location with flutter.sdk in the local.properties file.")`
	tests := []struct {
		name string
		body string
	}{
		{"new GradleException", "throw new GradleException" + message},
		{"bare GradleException", "throw GradleException" + message},
		{"FileNotFoundException", "throw new FileNotFoundException" + message},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "def flutterRoot = localProperties.getProperty('flutter.sdk')\n" +
				"if (flutterRoot == null) {\n" +
				"    " + tt.body + "\n" +
				"}\n"
			end, ok := m.Match(input, 0)
			require.True(t, ok)
			assert.Equal(t, len(input), end)
		})
	}
}

func TestSDKProperty_AssignmentStyle(t *testing.T) {
	m := SDKProperty("flutterRoot", "flutter.sdk", "Flutter SDK", "location with %s")

	input := "def flutterRoot = localProperties.getProperty('flutter.sdk')\n" +
		"if (flutterRoot == null) {\n" +
		"    flutterRoot = '../../flutter'\n" +
		"}\n"
	end, ok := m.Match(input, 0)
	require.True(t, ok)
	assert.Equal(t, len(input), end)
}

func TestSDKProperty_WrongMessageRejected(t *testing.T) {
	m := SDKProperty("flutterRoot", "flutter.sdk", "Flutter SDK", "location with %s")

	input := "def flutterRoot = localProperties.getProperty('flutter.sdk')\n" +
		"if (flutterRoot == null) {\n" +
		"    throw new GradleException(\"something else entirely\")\n" +
		"}\n"
	_, ok := m.Match(input, 0)
	assert.False(t, ok)
}

func TestFactories_Idempotent(t *testing.T) {
	// Two constructions from the same parameters accept the same language.
	a := PropertiesFileLoad("localProperties", "localPropertiesFile", "local.properties")
	b := PropertiesFileLoad("localProperties", "localPropertiesFile", "local.properties")

	inputs := []string{localPropertiesReader, localPropertiesStream, "", "def x = 1\n"}
	for _, input := range inputs {
		endA, okA := a.Match(input, 0)
		endB, okB := b.Match(input, 0)
		assert.Equal(t, okA, okB, "input %q", input)
		assert.Equal(t, endA, endB, "input %q", input)
	}
}
