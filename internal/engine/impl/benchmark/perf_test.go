package test

import (
	"UniqSpectra/internal/config"
	"UniqSpectra/internal/engine/impl/distinct"
	"UniqSpectra/internal/model"
	"math/rand"
	"net"
	"sync/atomic"
	"testing"
)

const numPackets = 1 << 16

// Synthetic traffic: 1024 sources, 4096 destination endpoints, repeats included.
func genPackets() []*model.PacketInfo {
	rng := rand.New(rand.NewSource(1))
	packets := make([]*model.PacketInfo, numPackets)
	for i := range packets {
		src := rng.Intn(1024)
		dst := rng.Intn(4096)
		packets[i] = &model.PacketInfo{
			FiveTuple: model.FiveTuple{
				SrcIP:    net.IPv4(10, 0, byte(src>>8), byte(src)).To16(),
				DstIP:    net.IPv4(192, 168, byte(dst>>8), byte(dst)).To16(),
				SrcPort:  uint16(1024 + src),
				DstPort:  uint16(1024 + dst),
				Protocol: 6,
			},
			Length: 64,
		}
	}
	return packets
}

func BenchmarkDistinctTask(b *testing.B) {
	packets := genPackets()

	cfg := config.DistinctTaskDef{
		Name:          "bench_per_src",
		FlowFields:    []string{"SrcIP"},
		ElementFields: []string{"DstIP", "DstPort"},
		Epsilon:       0.05,
		Delta:         0.01,
		SizeHint:      numPackets,
		NumShards:     16,
	}

	taskIface, err := distinct.New(cfg)
	if err != nil {
		b.Fatalf("Failed to create task: %v", err)
	}
	task := taskIface.(*distinct.Task)

	b.Run("ProcessPacket_Parallel", func(b *testing.B) {
		var idx atomic.Uint64
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				i := idx.Add(1)
				task.ProcessPacket(packets[i%numPackets])
			}
		})
	})

	b.Run("Snapshot", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = task.Snapshot()
		}
	})
}
