package distinct

import (
	"UniqSpectra/internal/config"
	"UniqSpectra/internal/engine/impl/distinct/statistic"
	"UniqSpectra/internal/factory"
	"UniqSpectra/internal/model"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"net"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash"
)

// --- Factory Registration ---

func init() {
	factory.RegisterAggregator("distinct", func(cfg *config.Config) (*factory.TaskGroup, error) {
		distinctCfg := cfg.Aggregator.Distinct

		// Create all enabled writers for this aggregator group
		writers := make([]model.Writer, 0, len(distinctCfg.Writers))
		for _, writerDef := range distinctCfg.Writers {
			if !writerDef.Enabled {
				continue
			}

			interval, err := time.ParseDuration(writerDef.SnapshotInterval)
			if err != nil {
				log.Printf("Warning: invalid snapshot_interval for writer type '%s': %v, skipping.", writerDef.Type, err)
				continue
			}

			var writer model.Writer
			switch writerDef.Type {
			case "text":
				writer = NewTextWriter(writerDef.Text.RootPath, interval)
				log.Printf("Text writer created at %s", writerDef.Text.RootPath)
			case "clickhouse":
				writer, err = NewClickHouseWriter(writerDef.ClickHouse, interval)
				if err != nil {
					log.Printf("Warning: failed to create writer type '%s': %v, skipping.", writerDef.Type, err)
					continue
				}
				log.Printf("ClickHouse writer created for database %s at %s:%d", writerDef.ClickHouse.Database, writerDef.ClickHouse.Host, writerDef.ClickHouse.Port)
			default:
				log.Printf("Warning: unknown writer type '%s' in distinct aggregator config, skipping.", writerDef.Type)
				continue
			}
			writers = append(writers, writer)
		}

		// Create all tasks for this aggregator group
		tasks := make([]model.Task, 0, len(distinctCfg.Tasks))
		for _, taskCfg := range distinctCfg.Tasks {
			task, err := New(taskCfg)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, task)
		}

		return &factory.TaskGroup{Tasks: tasks, Writers: writers}, nil
	})
}

// --- Task Implementation ---

const (
	IPv4ByteSize  = 4
	IPv6ByteSize  = 16
	PortByteSize  = 2
	ProtoByteSize = 1

	MaxFieldSize = 37 // IPv6(16) + IPv6(16) + Port(2) + Port(2) + Proto(1) = 37

	defaultNumShards        = 16
	defaultMaxFlowsPerShard = 8192

	// flow key used when the task runs a single stream-wide estimator
	globalFlowKey = "*"
)

var (
	flowPool = sync.Pool{
		New: func() any {
			return make([]byte, MaxFieldSize)
		},
	}
	elemPool = sync.Pool{
		New: func() any {
			return make([]byte, MaxFieldSize)
		},
	}
)

// Record is one flow's distinct-count estimate in a task snapshot.
type Record struct {
	Flow         string
	Estimate     float64
	SamplingRate float64
	Processed    uint64
}

// shard owns a slice of the per-flow estimator map. Updates for one flow are
// serialized by the shard mutex, so each estimator only ever sees a
// sequential stream.
type shard struct {
	mu         sync.Mutex
	estimators map[string]*statistic.CVM
	dropped    uint64
}

// Task counts distinct element keys per flow key with one CVM estimator per
// flow. It implements model.Task.
type Task struct {
	name string
	// flow key fields
	flowFields []string
	// the byte size of flow key
	flowSize uint32
	// element key fields
	elementFields []string
	// the byte size of element key
	elemSize uint32

	epsilon  float64
	delta    float64
	sizeHint uint64
	maxFlows int

	shards []*shard
}

// New creates a new distinct-count task based on the provided configuration.
func New(cfg config.DistinctTaskDef) (model.Task, error) {
	if len(cfg.ElementFields) == 0 {
		return nil, fmt.Errorf("task '%s': element_fields must not be empty", cfg.Name)
	}
	// Validate epsilon/delta here so a bad configuration fails at startup,
	// not on the first packet.
	if _, err := statistic.NewCVM(cfg.SizeHint, cfg.Epsilon, cfg.Delta, nil); err != nil {
		return nil, fmt.Errorf("task '%s': %w", cfg.Name, err)
	}

	flowSize := uint32(0)
	for _, f := range cfg.FlowFields {
		flowSize += fieldByteSize(f)
	}
	elemSize := uint32(0)
	for _, f := range cfg.ElementFields {
		elemSize += fieldByteSize(f)
	}

	numShards := cfg.NumShards
	if numShards == 0 {
		numShards = defaultNumShards
	}
	if len(cfg.FlowFields) == 0 {
		// A single global estimator needs no fan-out.
		numShards = 1
	}
	maxFlows := cfg.MaxFlowsPerShard
	if maxFlows == 0 {
		maxFlows = defaultMaxFlowsPerShard
	}

	shards := make([]*shard, numShards)
	for i := range shards {
		shards[i] = &shard{estimators: make(map[string]*statistic.CVM)}
	}

	log.Printf("Creating distinct-count task '%s' for:\n\tflow fields %v (bytes %d)\n\telement fields %v (bytes %d) with epsilon %.3f, delta %.3f, size_hint %d, %d shards\n",
		cfg.Name, cfg.FlowFields, flowSize, cfg.ElementFields, elemSize, cfg.Epsilon, cfg.Delta, cfg.SizeHint, numShards)

	return &Task{
		name:          cfg.Name,
		flowFields:    cfg.FlowFields,
		elementFields: cfg.ElementFields,
		flowSize:      flowSize,
		elemSize:      elemSize,
		epsilon:       cfg.Epsilon,
		delta:         cfg.Delta,
		sizeHint:      cfg.SizeHint,
		maxFlows:      maxFlows,
		shards:        shards,
	}, nil
}

// Name returns the name of the task.
func (t *Task) Name() string {
	return t.name
}

// ProcessPacket feeds one packet's element key into the estimator of the
// packet's flow, creating the estimator on first sight of the flow.
func (t *Task) ProcessPacket(packetInfo *model.PacketInfo) {
	flow := flowPool.Get().([]byte)[:t.flowSize]
	elem := elemPool.Get().([]byte)[:t.elemSize]
	defer flowPool.Put(flow)
	defer elemPool.Put(elem)

	offset := 0
	for _, f := range t.flowFields {
		offset = encodeField(flow, offset, f, &packetInfo.FiveTuple)
	}
	offset = 0
	for _, f := range t.elementFields {
		offset = encodeField(elem, offset, f, &packetInfo.FiveTuple)
	}

	sh := t.shards[0]
	if len(t.shards) > 1 {
		sh = t.shards[xxhash.Sum64(flow)%uint64(len(t.shards))]
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()

	key := string(flow)
	est, ok := sh.estimators[key]
	if !ok {
		if len(sh.estimators) >= t.maxFlows {
			sh.dropped++
			if sh.dropped%100000 == 1 {
				log.Printf("Task '%s': flow capacity reached, %d packets dropped so far in this shard", t.name, sh.dropped)
			}
			return
		}
		var err error
		est, err = statistic.NewCVM(t.sizeHint, t.epsilon, t.delta, nil)
		if err != nil {
			// Parameters were validated in New, this cannot happen.
			log.Printf("Task '%s': failed to create estimator: %v", t.name, err)
			return
		}
		sh.estimators[key] = est
	}

	if err := est.Update(elem); err != nil {
		if errors.Is(err, statistic.ErrThinningFailed) {
			// The estimator is poisoned and its estimate can no longer be
			// trusted. Drop it so the flow restarts from a clean state.
			log.Printf("Task '%s': estimator for flow '%s' failed fatally, dropping it: %v",
				t.name, t.decodeFlow(flow), err)
			delete(sh.estimators, key)
			return
		}
		log.Printf("Task '%s': update error for flow '%s': %v", t.name, t.decodeFlow(flow), err)
	}
}

// Snapshot returns the current per-flow estimates as []Record, sorted by
// estimate in descending order.
func (t *Task) Snapshot() any {
	records := make([]Record, 0)
	for _, sh := range t.shards {
		sh.mu.Lock()
		for key, est := range sh.estimators {
			records = append(records, Record{
				Flow:         t.decodeFlow([]byte(key)),
				Estimate:     est.Estimate(),
				SamplingRate: est.SamplingRate(),
				Processed:    est.Processed(),
			})
		}
		sh.mu.Unlock()
	}

	sortRecords(records)
	return records
}

// Reset clears the internal state of the task, preparing for a new measurement period.
func (t *Task) Reset() {
	for _, sh := range t.shards {
		sh.mu.Lock()
		sh.estimators = make(map[string]*statistic.CVM)
		sh.dropped = 0
		sh.mu.Unlock()
	}
}

// AlerterMsg evaluates alert rules against the current snapshot.
func (t *Task) AlerterMsg(rules []config.AlerterRule) string {
	records, ok := t.Snapshot().([]Record)
	if !ok {
		log.Printf("ERROR: AlerterMsg in distinct task received unexpected snapshot type")
		return ""
	}

	var triggeredMessages []string

	for _, rule := range rules {
		if rule.TaskName != t.name || rule.Metric != "distinct_estimate" {
			continue
		}

		var hitters []string
		for _, rec := range records {
			if check(rec.Estimate, rule.Threshold, rule.Operator) {
				hitters = append(hitters, fmt.Sprintf("<tr><td><code>%s</code></td><td>%.0f</td></tr>", rec.Flow, rec.Estimate))
			}
		}

		if len(hitters) > 0 {
			itemsTable := fmt.Sprintf("<table border=\"1\" cellpadding=\"5\" cellspacing=\"0\">"+
				"<tr><th>Flow</th><th>Distinct Estimate</th></tr>%s</table>", strings.Join(hitters, ""))

			msg := fmt.Sprintf("<h3>Alert: %s</h3>"+
				"<ul>"+
				"<li><b>Task:</b> <code>%s</code></li>"+
				"<li><b>Metric:</b> <code>%s</code></li>"+
				"<li><b>Condition:</b> <code>%s %.2f</code></li>"+
				"</ul>"+
				"<p><b>Triggering Flows:</b></p>%s",
				rule.Name, rule.TaskName, rule.Metric, rule.Operator, rule.Threshold, itemsTable)
			triggeredMessages = append(triggeredMessages, msg)
		}
	}

	return strings.Join(triggeredMessages, "<br><hr><br>")
}

// check compares a value against a threshold based on an operator.
func check(value, threshold float64, operator string) bool {
	switch operator {
	case ">":
		return value > threshold
	case "<":
		return value < threshold
	case "=":
		return value == threshold
	case ">=":
		return value >= threshold
	case "<=":
		return value <= threshold
	default:
		log.Printf("Warning: unknown operator '%s' in alerter rule", operator)
		return false
	}
}

func sortRecords(records []Record) {
	// Sort by estimate in descending order
	slices.SortFunc(records, func(a, b Record) int {
		switch {
		case b.Estimate > a.Estimate:
			return 1
		case b.Estimate < a.Estimate:
			return -1
		}
		return 0
	})
}

func (t *Task) decodeFlow(flow []byte) string {
	if len(t.flowFields) == 0 {
		return globalFlowKey
	}

	var parts []string
	offset := 0

	for _, f := range t.flowFields {
		switch f {
		case "SrcIP", "DstIP":
			ip := net.IP(flow[offset : offset+IPv6ByteSize])
			parts = append(parts, ip.String())
			offset += IPv6ByteSize
		case "SrcPort", "DstPort":
			port := binary.BigEndian.Uint16(flow[offset : offset+PortByteSize])
			parts = append(parts, strconv.Itoa(int(port)))
			offset += PortByteSize
		case "Protocol":
			proto := uint8(flow[offset])
			parts = append(parts, strconv.Itoa(int(proto)))
			offset += ProtoByteSize
		}
	}

	return strings.Join(parts, " ")
}

func encodeField(buf []byte, offset int, field string, ft *model.FiveTuple) int {
	switch field {
	case "SrcIP":
		copy(buf[offset:], ft.SrcIP.To16())
		offset += IPv6ByteSize
	case "DstIP":
		copy(buf[offset:], ft.DstIP.To16())
		offset += IPv6ByteSize
	case "SrcPort":
		buf[offset] = byte(ft.SrcPort >> 8)
		buf[offset+1] = byte(ft.SrcPort & 0xFF)
		offset += PortByteSize
	case "DstPort":
		buf[offset] = byte(ft.DstPort >> 8)
		buf[offset+1] = byte(ft.DstPort & 0xFF)
		offset += PortByteSize
	case "Protocol":
		buf[offset] = byte(ft.Protocol)
		offset += ProtoByteSize
	}
	return offset
}

func fieldByteSize(field string) uint32 {
	switch field {
	case "SrcIP", "DstIP":
		return IPv6ByteSize
	case "SrcPort", "DstPort":
		return PortByteSize
	case "Protocol":
		return ProtoByteSize
	default:
		return 0
	}
}
