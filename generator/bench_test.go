package generator_test

import (
	"testing"

	"github.com/hasbyte1/pwgen/generator"
	"github.com/hasbyte1/pwgen/policy"
)

// Note: Generate is dominated by the fixed-cost Argon2id stretch (64 MiB,
// 3 passes); this benchmark measures the real per-password latency, not
// framework overhead.
func BenchmarkGenerate(b *testing.B) {
	pol, err := policy.Validate(policy.Default())
	if err != nil {
		b.Fatalf("Validate: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = generator.Generate("bench-secret", "example.com", "alice", pol, 1)
	}
}
