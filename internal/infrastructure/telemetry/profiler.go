package telemetry

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// ProfilerConfig holds the Pyroscope continuous profiling settings.
type ProfilerConfig struct {
	Enabled           bool
	ServerAddress     string // e.g. http://pyroscope:4040
	ApplicationName   string
	BasicAuthUser     string
	BasicAuthPassword string

	// ProfileTypes names the profiles to collect. Empty means pyroscope's defaults.
	ProfileTypes []string

	MutexProfileFraction int // default 5 when mutex profiles are on
	BlockProfileRate     int // default 5 when block profiles are on
}

var profileTypesByName = map[string]pyroscope.ProfileType{
	"cpu":            pyroscope.ProfileCPU,
	"alloc_objects":  pyroscope.ProfileAllocObjects,
	"alloc_space":    pyroscope.ProfileAllocSpace,
	"inuse_objects":  pyroscope.ProfileInuseObjects,
	"inuse_space":    pyroscope.ProfileInuseSpace,
	"goroutines":     pyroscope.ProfileGoroutines,
	"mutex_count":    pyroscope.ProfileMutexCount,
	"mutex_duration": pyroscope.ProfileMutexDuration,
	"block_count":    pyroscope.ProfileBlockCount,
	"block_duration": pyroscope.ProfileBlockDuration,
}

func parseProfileTypes(names []string) ([]pyroscope.ProfileType, error) {
	if len(names) == 0 {
		return pyroscope.DefaultProfileTypes, nil
	}
	types := make([]pyroscope.ProfileType, 0, len(names))
	for _, name := range names {
		pt, ok := profileTypesByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown profile type %q", name)
		}
		types = append(types, pt)
	}
	return types, nil
}

func hasProfileType(types []pyroscope.ProfileType, want ...pyroscope.ProfileType) bool {
	for _, t := range types {
		for _, w := range want {
			if t == w {
				return true
			}
		}
	}
	return false
}

// Profiler owns the Pyroscope session of the process. A disabled Profiler is a no-op.
type Profiler struct {
	profiler *pyroscope.Profiler
	logger   *zap.Logger
	mu       sync.Mutex
	stopped  bool
}

// StartProfiler starts continuous profiling when cfg.Enabled is set.
func StartProfiler(cfg ProfilerConfig, logger *zap.Logger) (*Profiler, error) {
	p := &Profiler{logger: logger}
	if !cfg.Enabled {
		logger.Debug("Continuous profiling disabled")
		return p, nil
	}
	if cfg.ServerAddress == "" {
		return nil, fmt.Errorf("profiler server address is required when profiling is enabled")
	}
	if cfg.ApplicationName == "" {
		return nil, fmt.Errorf("profiler application name is required when profiling is enabled")
	}
	types, err := parseProfileTypes(cfg.ProfileTypes)
	if err != nil {
		return nil, err
	}

	if hasProfileType(types, pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration) {
		runtime.SetMutexProfileFraction(positiveOr(cfg.MutexProfileFraction, 5))
	}
	if hasProfileType(types, pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration) {
		runtime.SetBlockProfileRate(positiveOr(cfg.BlockProfileRate, 5))
	}

	tags := map[string]string{}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		tags["hostname"] = hostname
	}

	session, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.ApplicationName,
		ServerAddress:     cfg.ServerAddress,
		BasicAuthUser:     cfg.BasicAuthUser,
		BasicAuthPassword: cfg.BasicAuthPassword,
		Logger:            pyroscopeLogger{logger.Named("pyroscope").Sugar()},
		Tags:              tags,
		ProfileTypes:      types,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start Pyroscope profiler: %w", err)
	}
	p.profiler = session

	logger.Info("Pyroscope profiler started",
		zap.String("server_address", cfg.ServerAddress),
		zap.String("application_name", cfg.ApplicationName),
		zap.Int("profile_types", len(types)),
	)
	return p, nil
}

func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// Enabled reports whether profiles are being uploaded.
func (p *Profiler) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profiler != nil && !p.stopped
}

// Stop flushes and ends the session. It is safe to call more than once.
func (p *Profiler) Stop() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped || p.profiler == nil {
		p.stopped = true
		return nil
	}
	p.stopped = true
	if err := p.profiler.Stop(); err != nil {
		return fmt.Errorf("failed to stop profiler: %w", err)
	}
	p.logger.Info("Pyroscope profiler stopped")
	return nil
}

type pyroscopeLogger struct {
	s *zap.SugaredLogger
}

func (l pyroscopeLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l pyroscopeLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l pyroscopeLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
