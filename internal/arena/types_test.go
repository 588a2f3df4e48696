package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"python", LangPython},
		{"Python", LangPython},
		{" JAVASCRIPT ", LangJavaScript},
		{"java", LangJava},
		{"cpp", LangCPP},
	}
	for _, tc := range cases {
		got, err := ParseLanguage(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseLanguage("cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cobol")
}

func TestLanguageCycle(t *testing.T) {
	assert.Equal(t, LangJavaScript, LangPython.Next())
	assert.Equal(t, LangJava, LangJavaScript.Next())
	assert.Equal(t, LangCPP, LangJava.Next())
	assert.Equal(t, LangPython, LangCPP.Next())

	// Unknown values restart the cycle rather than propagate garbage.
	assert.Equal(t, LangPython, Language("brainfuck").Next())
}

func TestLanguagesIsACopy(t *testing.T) {
	got := Languages()
	require.Len(t, got, 4)
	got[0] = Language("mutated")
	assert.Equal(t, LangPython, Languages()[0])
}
