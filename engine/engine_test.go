package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type testEngine struct {
	id string
}

func (e testEngine) ID() string { return e.id }

func newTestEngine(id string) Engine {
	return testEngine{id: id}
}

func testInfo(id string, start, end rune, langs string) Info {
	return Info{
		ID:         id,
		Type:       TypeShape,
		RenderType: "test",
		Ranges:     []Range{{Start: start, End: end, Langs: langs}},
	}
}

// --- Test Suite Preparation ------------------------------------------------

type RegistryTestEnviron struct {
	suite.Suite
	reg *Registry
}

// listen for 'go test' command --> run test methods
func TestRegistryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcore.engine")
	defer teardown()
	suite.Run(t, new(RegistryTestEnviron))
}

// run before each test method
func (env *RegistryTestEnviron) SetupTest() {
	tracing.Select("textcore.engine").SetTraceLevel(tracing.LevelInfo)
	env.reg = NewRegistry()
}

// --- Tests -----------------------------------------------------------------

func (env *RegistryTestEnviron) TestExactBeforeFallback() {
	require.NoError(env.T(), env.reg.Register(testInfo("exact", 'A', 'Z', "en"), newTestEngine))
	require.NoError(env.T(), env.reg.Register(testInfo("fallback", 'A', 'Z', ""), newTestEngine))
	m := env.reg.FindMap(language.NewLanguage("en-US"), TypeShape, "test")
	e := m.GetEngine(language.Latin)
	require.NotNil(env.T(), e)
	env.Equal("exact", e.ID())
	m = env.reg.FindMap(language.NewLanguage("de"), TypeShape, "test")
	e = m.GetEngine(language.Latin)
	require.NotNil(env.T(), e)
	env.Equal("fallback", e.ID())
}

func (env *RegistryTestEnviron) TestCommonExactBeforeScriptFallback() {
	require.NoError(env.T(), env.reg.Register(testInfo("common", ' ', ' ', "*"), newTestEngine))
	require.NoError(env.T(), env.reg.Register(testInfo("latin", 'a', 'z', ""), newTestEngine))
	m := env.reg.FindMap("fr", TypeShape, "test")
	env.Equal("common", m.GetEngine(language.Latin).ID())
	env.Equal("common", m.GetEngine(language.Arabic).ID())
}

func (env *RegistryTestEnviron) TestMostRecentFirst() {
	require.NoError(env.T(), env.reg.Register(testInfo("first", 'a', 'z', ""), newTestEngine))
	require.NoError(env.T(), env.reg.Register(testInfo("second", 'a', 'z', ""), newTestEngine))
	m := env.reg.FindMap("en", TypeShape, "test")
	env.Equal("second", m.GetEngine(language.Latin).ID())
	exact, fallback := m.GetEngines(language.Latin)
	env.Len(exact, 0)
	if env.Len(fallback, 2) {
		env.Equal("first", fallback[1].ID())
	}
}

func (env *RegistryTestEnviron) TestMapIsCached() {
	require.NoError(env.T(), env.reg.Register(testInfo("x", 'a', 'z', "en"), newTestEngine))
	m1 := env.reg.FindMap("en", TypeShape, "test")
	m2 := env.reg.FindMap("en", TypeShape, "test")
	env.Same(m1, m2)
	m3 := env.reg.FindMap("en", TypeShape, "other")
	env.NotSame(m1, m3)
	env.Equal(0, m3.Scripts())
}

func (env *RegistryTestEnviron) TestNoEngine() {
	m := env.reg.FindMap("en", TypeShape, "test")
	require.NotNil(env.T(), m)
	env.Nil(m.GetEngine(language.Latin))
	require.NoError(env.T(), env.reg.Register(testInfo("hebrew", 0x05D0, 0x05EA, ""), newTestEngine))
	m = env.reg.FindMap("he", TypeShape, "test")
	env.Nil(m.GetEngine(language.Latin))
	env.Nil(m.GetEngine(language.Script(0x12345678)))
	env.Equal("hebrew", m.GetEngine(language.Hebrew).ID())
}

func (env *RegistryTestEnviron) TestRegistrationErrors() {
	require.NoError(env.T(), env.reg.Register(testInfo("x", 'a', 'z', ""), newTestEngine))
	err := env.reg.Register(testInfo("x", 'a', 'z', ""), newTestEngine)
	env.True(errors.Is(err, ErrAlreadyRegistered))
	err = env.reg.Register(testInfo("", 'a', 'z', ""), newTestEngine)
	env.True(errors.Is(err, ErrInvalidInfo))
	err = env.reg.Register(testInfo("y", 'a', 'z', ""), nil)
	env.True(errors.Is(err, ErrInvalidInfo))
	env.Len(env.reg.Engines(), 1)
}

func (env *RegistryTestEnviron) TestEngineCreatedOnce() {
	var created int32
	factory := func(id string) Engine {
		atomic.AddInt32(&created, 1)
		return testEngine{id: id}
	}
	require.NoError(env.T(), env.reg.Register(testInfo("once", 'a', 'z', "*"), factory))
	m := env.reg.FindMap("en", TypeShape, "test")
	env.Equal(int32(0), atomic.LoadInt32(&created), "engine must not be created by map build")
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if e := m.GetEngine(language.Latin); e == nil || e.ID() != "once" {
				env.T().Errorf("expected engine 'once', is %v", e)
			}
		}()
	}
	wg.Wait()
	env.Equal(int32(1), atomic.LoadInt32(&created))
}

// --- Plain tests -----------------------------------------------------------

func TestLanguageMatches(t *testing.T) {
	for _, x := range []struct {
		lang    string
		ranges  string
		matches bool
	}{
		{"en", "en", true},
		{"en-us", "en", true},
		{"en-us", "de;en", true},
		{"en-us", "de:fr, en", true},
		{"de-ch", "DE", true},
		{"deu", "de", false},
		{"en", "en-us", false},
		{"fa", "*", true},
		{"", "*", true},
		{"en", "*x", false},
		{"en", "*x;*", true},
		{"en", "", false},
		{"", "", false},
		{"", ";de", true},
	} {
		m := LanguageMatches(language.Language(x.lang), x.ranges)
		assert.Equal(t, x.matches, m, "LanguageMatches(%q, %q)", x.lang, x.ranges)
	}
}

func TestLanguageFromString(t *testing.T) {
	assert.Equal(t, language.Language("en-us"), LanguageFromString("en_US"))
	assert.Equal(t, language.Language("en"), LanguageFromString("en_US").Primary())
	assert.NotEmpty(t, DefaultLanguage())
}

func TestScriptsInRange(t *testing.T) {
	assert.Equal(t, []language.Script{language.Latin}, scriptsInRange('a', 'z'))
	scripts := scriptsInRange(' ', 'A')
	assert.Contains(t, scripts, language.Common)
	assert.Contains(t, scripts, language.Latin)
	assert.Empty(t, scriptsInRange('z', 'a'))
}
