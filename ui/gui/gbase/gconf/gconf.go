package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

const configFile = "clickchess.json"

type Config struct {
	Theme      string `json:"theme"`       // light/dark
	Lang       string `json:"language"`    // en/ru
	HumanColor string `json:"human_color"` // white/black
	Selector   string `json:"selector"`    // minimax/random
	Level      int    `json:"level"`       // 1..5
	AssetsDir  string `json:"assets_dir"`  // piece sprites and lang files
	WindowH    int    `json:"window_h"`    //
	WindowW    int    `json:"window_w"`    //
	Debug      bool   `json:"debug"`       // true/false
}

func defaultConfig() Config {
	return Config{
		Theme:      "light",
		Lang:       "en",
		HumanColor: "black",
		Selector:   "minimax",
		Level:      3,
		AssetsDir:  "assets",
		WindowH:    700,
		WindowW:    1000,
		Debug:      false,
	}
}

type GUIConfigWorker struct {
	Config *Config
	path   string
}

func NewGUIConfigWorker() (*GUIConfigWorker, error) {
	return NewGUIConfigWorkerFrom(configFile)
}

func NewGUIConfigWorkerFrom(path string) (*GUIConfigWorker, error) {
	w := &GUIConfigWorker{path: path}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		def := defaultConfig()
		w.Config = &def
		return w, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	w.Config = &c

	return w, nil
}

func (w *GUIConfigWorker) Save() error {
	jsonData, err := json.MarshalIndent(w.Config, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(w.path, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if c.HumanColor != "white" && c.HumanColor != "black" {
		c.HumanColor = def.HumanColor
	}
	if c.Selector != "minimax" && c.Selector != "random" {
		c.Selector = def.Selector
	}
	if c.Level < 1 || c.Level > 5 {
		c.Level = def.Level
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
