package translate

import "context"

// Mock is a canned-response Service for tests. Phrases absent from the
// Translations map are simply omitted from the result.
type Mock struct {
	Translations map[string]string
	Err          error
	Calls        [][]string
}

func NewMock(translations map[string]string) *Mock {
	if translations == nil {
		translations = map[string]string{}
	}
	return &Mock{Translations: translations}
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) BatchTranslate(_ context.Context, phrases []string) (map[string]string, error) {
	recorded := make([]string, len(phrases))
	copy(recorded, phrases)
	m.Calls = append(m.Calls, recorded)

	if m.Err != nil {
		return nil, m.Err
	}
	out := make(map[string]string, len(phrases))
	for _, p := range phrases {
		if tr, ok := m.Translations[p]; ok {
			out[p] = tr
		}
	}
	return out, nil
}
