package glang

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// GUILangWorker serves UI strings from JSON dictionaries under the
// assets directory, one file per language.
type GUILangWorker struct {
	workdir string
	lang    string
	dict    map[string]string
}

func NewGUILangWorker(workdir, lang string) (*GUILangWorker, error) {
	w := &GUILangWorker{workdir: workdir}
	if err := w.SetLang(lang); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *GUILangWorker) Lang() string { return w.lang }

func (w *GUILangWorker) SetLang(lang string) error {
	path := filepath.Join(w.workdir, lang+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error read lang file: %w", err)
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("error decode lang file %s: %w", path, err)
	}
	w.lang = lang
	w.dict = dict
	return nil
}

// T returns the translation for key, or the key itself when missing.
func (w *GUILangWorker) T(key string) string {
	if v, ok := w.dict[key]; ok {
		return v
	}
	return key
}
