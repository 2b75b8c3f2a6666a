// Command synthcored runs the audio synthesis core as a standalone
// process: it loads configuration, constructs shared state, creates the
// inter-stage queues, opens the output device, and spawns the render and
// command stages.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dspforge/synthcore/pkg/engine"
	"github.com/dspforge/synthcore/pkg/engine/queue"
	"github.com/dspforge/synthcore/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML configuration document")
	instrumentCount := flag.Int("instruments", 4, "number of instruments in the render stage's instrument bank")
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		loaded, err := engine.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log, err := logging.NewFromConfig(cfg.Logging, "synthcored")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg, *instrumentCount, log); err != nil {
		log.Fatal("%v", err)
	}
}

func run(cfg engine.Config, instrumentCount int, log *logging.Logger) error {
	state := engine.NewSharedState(cfg.Audio.SampleRate, cfg.Audio.MasterVolume)

	sampleQueue := queue.NewSampleQueue(cfg.Audio.AudioRingBufferSize)
	messageQueue := queue.NewMessageQueue(cfg.Audio.MessageRingBufferSize)
	eventQueue := queue.NewEventQueue()
	commandChan := make(chan engine.Command, 256)

	device, err := engine.OpenDevice(state, sampleQueue, int(cfg.Audio.SampleRate))
	if err != nil {
		return err
	}
	device.Start()
	defer device.Close()

	render := engine.NewRenderStage(log.With("render"), state, messageQueue, sampleQueue, eventQueue, instrumentCount, cfg.System.VoiceCount, cfg.Audio.RenderChunkSize)
	go render.Run()

	command := engine.NewCommandStage(log.With("command"), state, commandChan, messageQueue, eventQueue, instrumentCount)
	go command.Run()

	eventQueue.Push(engine.AudioStarted{})
	log.Info("synthcored started: sample_rate=%d voices=%d instruments=%d", cfg.Audio.SampleRate, cfg.System.VoiceCount, instrumentCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	commandChan <- engine.Shutdown{}
	eventQueue.Push(engine.AudioStopped{})
	return nil
}
