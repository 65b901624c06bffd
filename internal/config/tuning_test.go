package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	tuning, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default(), tuning)
	assert.Equal(t, 40, tuning.TileCount)
	assert.Equal(t, 8.0, tuning.TileDimension)
	assert.Equal(t, 1.0, tuning.TileBorderThickness)
	assert.Equal(t, 350.0, tuning.TurretPosition)
	assert.Equal(t, 1.0, tuning.TurretRotationSpeed)
	assert.Equal(t, 100.0, tuning.BulletFireForce)
	assert.Equal(t, 1.0, tuning.BulletMassFactor)
	assert.Equal(t, 5.0, tuning.BulletRadiusFactor)
	assert.Equal(t, 0.5, tuning.TextAspectFactor)
	assert.False(t, tuning.AutoMultiply)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"bulletFireForce": 250,
		"autoMultiply": true
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	tuning, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", tuning.LogLevel)
	assert.Equal(t, 250.0, tuning.BulletFireForce)
	assert.True(t, tuning.AutoMultiply)
	assert.Equal(t, 5.0, tuning.BulletRadiusFactor)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ARENA_TURRETROTATIONSPEED", "2.5")

	tuning, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 2.5, tuning.TurretRotationSpeed)
}

func TestLoad_RejectsNegativeRotationFromEnv(t *testing.T) {
	t.Setenv("ARENA_TURRETROTATIONSPEED", "-1")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "turretRotationSpeed")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidTuning(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"tileCount": 0}`), 0644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "tileCount")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Tuning)
		wantErr bool
	}{
		{"defaults", func(*Tuning) {}, false},
		{"zero rotation speed", func(t *Tuning) { t.TurretRotationSpeed = 0 }, true},
		{"negative rotation speed", func(t *Tuning) { t.TurretRotationSpeed = -1 }, true},
		{"negative fire force", func(t *Tuning) { t.BulletFireForce = -250 }, true},
		{"zero fire force", func(t *Tuning) { t.BulletFireForce = 0 }, false},
		{"zero radius factor", func(t *Tuning) { t.BulletRadiusFactor = 0 }, true},
		{"negative border", func(t *Tuning) { t.TileBorderThickness = -1 }, true},
		{"zero aspect", func(t *Tuning) { t.TextAspectFactor = 0 }, true},
		{"auto multiply without interval", func(t *Tuning) {
			t.AutoMultiply = true
			t.AutoMultiplyInterval = 0
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := Default()
			tt.mutate(&tuning)
			if tt.wantErr {
				assert.Error(t, tuning.Validate())
			} else {
				assert.NoError(t, tuning.Validate())
			}
		})
	}
}
