// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the optional tuning file looked up in the config directory.
const FileName = "arena.cfg.json"

// Tuning holds every gameplay constant the simulation reads at runtime.
// Defaults reproduce the package constants exactly.
type Tuning struct {
	LogLevel  string `mapstructure:"logLevel"`
	PprofAddr string `mapstructure:"pprofAddr"`

	TileCount           int     `mapstructure:"tileCount"`
	TileDimension       float64 `mapstructure:"tileDimension"`
	TileBorderThickness float64 `mapstructure:"tileBorderThickness"`

	TurretPosition      float64 `mapstructure:"turretPosition"`
	TurretRotationSpeed float64 `mapstructure:"turretRotationSpeed"`

	BulletFireForce    float64 `mapstructure:"bulletFireForce"`
	BulletMassFactor   float64 `mapstructure:"bulletMassFactor"`
	BulletRadiusFactor float64 `mapstructure:"bulletRadiusFactor"`
	TextAspectFactor   float64 `mapstructure:"textAspectFactor"`

	AutoMultiply         bool    `mapstructure:"autoMultiply"`
	AutoMultiplyInterval float64 `mapstructure:"autoMultiplyInterval"`
}

// Default returns the tuning used when no file or environment overrides exist.
func Default() Tuning {
	return Tuning{
		LogLevel:             "info",
		TileCount:            TileCount,
		TileDimension:        TileDimension,
		TileBorderThickness:  TileBorderThickness,
		TurretPosition:       TurretPosition,
		TurretRotationSpeed:  TurretRotationSpeed,
		BulletFireForce:      BulletFireForce,
		BulletMassFactor:     BulletMassFactor,
		BulletRadiusFactor:   BulletRadiusFactor,
		TextAspectFactor:     BulletTextFontSizeAspect,
		AutoMultiplyInterval: AutoMultiplyInterval,
	}
}

// Load reads tuning from configDir/arena.cfg.json and ARENA_* environment
// variables on top of Default. A missing file is not an error.
func Load(configDir string) (Tuning, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Tuning{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var t Tuning
	if err := v.Unmarshal(&t); err != nil {
		return Tuning{}, fmt.Errorf("error decoding tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.TileCount <= 0:
		return fmt.Errorf("tileCount must be positive, got %d", t.TileCount)
	case t.TileDimension <= 0:
		return fmt.Errorf("tileDimension must be positive, got %v", t.TileDimension)
	case t.TileBorderThickness < 0:
		return fmt.Errorf("tileBorderThickness must not be negative, got %v", t.TileBorderThickness)
	case t.TurretRotationSpeed <= 0:
		return fmt.Errorf("turretRotationSpeed must be positive, got %v", t.TurretRotationSpeed)
	case t.BulletFireForce < 0:
		return fmt.Errorf("bulletFireForce must not be negative, got %v", t.BulletFireForce)
	case t.BulletRadiusFactor <= 0:
		return fmt.Errorf("bulletRadiusFactor must be positive, got %v", t.BulletRadiusFactor)
	case t.BulletMassFactor <= 0:
		return fmt.Errorf("bulletMassFactor must be positive, got %v", t.BulletMassFactor)
	case t.TextAspectFactor <= 0:
		return fmt.Errorf("textAspectFactor must be positive, got %v", t.TextAspectFactor)
	case t.AutoMultiply && t.AutoMultiplyInterval <= 0:
		return fmt.Errorf("autoMultiplyInterval must be positive, got %v", t.AutoMultiplyInterval)
	}
	return nil
}

func setDefaults(v *viper.Viper, d Tuning) {
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("pprofAddr", d.PprofAddr)
	v.SetDefault("tileCount", d.TileCount)
	v.SetDefault("tileDimension", d.TileDimension)
	v.SetDefault("tileBorderThickness", d.TileBorderThickness)
	v.SetDefault("turretPosition", d.TurretPosition)
	v.SetDefault("turretRotationSpeed", d.TurretRotationSpeed)
	v.SetDefault("bulletFireForce", d.BulletFireForce)
	v.SetDefault("bulletMassFactor", d.BulletMassFactor)
	v.SetDefault("bulletRadiusFactor", d.BulletRadiusFactor)
	v.SetDefault("textAspectFactor", d.TextAspectFactor)
	v.SetDefault("autoMultiply", d.AutoMultiply)
	v.SetDefault("autoMultiplyInterval", d.AutoMultiplyInterval)
}
