package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dspforge/synthcore/pkg/logging"
)

// Config is the persisted, human-editable configuration document: three
// groups (system, audio, logging) loaded once at startup. Absent fields
// take the defaults below.
type Config struct {
	System  SystemConfig   `yaml:"system"`
	Audio   AudioConfig    `yaml:"audio"`
	Logging logging.Config `yaml:"logging"`
}

// SystemConfig holds process-level tunables outside the audio path.
type SystemConfig struct {
	VoiceCount int `yaml:"voice_count"`
}

// AudioConfig holds the fields that parametrize latency and buffering.
type AudioConfig struct {
	SampleRate            uint32  `yaml:"sample_rate"`
	MasterVolume          float32 `yaml:"master_volume"`
	DeviceBufferSize      int     `yaml:"cpal_buffer_size"`
	RenderChunkSize       int     `yaml:"render_chunk_size"`
	AudioRingBufferSize   int     `yaml:"audio_ring_buffer_size"`
	MessageRingBufferSize int     `yaml:"message_ring_buffer_size"`
	TargetLatencyMS       int     `yaml:"target_latency_ms"`
}

// DefaultConfig returns the configuration document's documented defaults.
func DefaultConfig() Config {
	return Config{
		System: SystemConfig{VoiceCount: 4},
		Audio: AudioConfig{
			SampleRate:            44100,
			MasterVolume:          1.0,
			DeviceBufferSize:      64,
			RenderChunkSize:       256,
			AudioRingBufferSize:   88200,
			MessageRingBufferSize: 1024,
			TargetLatencyMS:       50,
		},
		Logging: logging.Config{
			Level:       "info",
			LogToStdout: true,
		},
	}
}

// LoadConfig reads a YAML configuration document from path, filling in
// defaults for any field the document omits.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("engine: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config %s: %w", path, err)
	}
	return cfg, nil
}
