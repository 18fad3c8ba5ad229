// Package storage persists container blocks and their inventories in a LevelDB
// database so a world can be restored with its block entities.
package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
	"github.com/df-mc/goleveldb/leveldb/storage"
	"github.com/df-mc/goleveldb/leveldb/util"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"container-indicator/internal/item"
	"container-indicator/internal/logger"
	"container-indicator/internal/profiling"
	"container-indicator/internal/world"
)

// keyPrefix marks block records. The rest of a key is the big-endian x, y and z.
var keyPrefix = []byte("blk")

// Record is what is stored for one block.
type Record struct {
	Block  world.BlockType `json:"block"`
	Facing world.BlockFace `json:"facing"`
	Chest  world.ChestType `json:"chest,omitempty"`
	Flags  Flags           `json:"flags"`
	Items  []Stack         `json:"items,omitempty"`
}

// Flags are the indicator flags at the time the block was saved.
type Flags struct {
	Items bool `json:"items,omitempty"`
	Input bool `json:"input,omitempty"`
	Fuel  bool `json:"fuel,omitempty"`
}

// Stack is one occupied slot.
type Stack struct {
	Slot  int       `json:"slot"`
	Item  item.Type `json:"item"`
	Count int       `json:"count"`
}

// Provider reads and writes block records.
type Provider struct {
	db  *leveldb.DB
	log *zap.Logger
}

// Open opens or creates the database in dir.
func Open(dir string, log *zap.Logger) (*Provider, error) {
	db, err := leveldb.OpenFile(dir, &opt.Options{
		Compression: opt.SnappyCompression,
	})
	if err != nil {
		return nil, fmt.Errorf("open block database %s: %w", dir, err)
	}
	return &Provider{db: db, log: logger.OrNop(log)}, nil
}

// OpenMemory opens a database that lives only in memory.
func OpenMemory(log *zap.Logger) (*Provider, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open memory database: %w", err)
	}
	return &Provider{db: db, log: logger.OrNop(log)}, nil
}

// Close closes the database.
func (p *Provider) Close() error {
	return p.db.Close()
}

// StoreBlock writes the record for one position.
func (p *Provider) StoreBlock(pos world.Pos, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode block %v: %w", pos, err)
	}
	return p.db.Put(key(pos), data, nil)
}

// LoadBlock reads the record for one position. The bool is false when nothing is
// stored there.
func (p *Provider) LoadBlock(pos world.Pos) (Record, bool, error) {
	data, err := p.db.Get(key(pos), nil)
	switch {
	case err == nil:
	case errors.Is(err, leveldb.ErrNotFound):
		return Record{}, false, nil
	default:
		return Record{}, false, fmt.Errorf("read block %v: %w", pos, err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, false, fmt.Errorf("decode block %v: %w", pos, err)
	}
	return r, true, nil
}

// Save replaces the stored records with every loaded block entity of w. It returns how
// many blocks were written.
func (p *Provider) Save(w *world.World) (int, error) {
	defer profiling.Track("storage.Save")()

	batch := new(leveldb.Batch)
	iter := p.db.NewIterator(util.BytesPrefix(keyPrefix), nil)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return 0, fmt.Errorf("scan stored blocks: %w", err)
	}

	n := 0
	for _, pos := range w.LoadedBlockEntities() {
		s, ok := w.State(pos)
		if !ok {
			continue
		}
		r := RecordOf(s)
		if inv, ok := w.Inventory(pos); ok {
			for i := range inv.Size() {
				st := inv.ItemAt(i)
				if st.IsEmpty() {
					continue
				}
				r.Items = append(r.Items, Stack{Slot: i, Item: st.Type, Count: st.Count})
			}
		}
		data, err := json.Marshal(r)
		if err != nil {
			return 0, fmt.Errorf("encode block %v: %w", pos, err)
		}
		batch.Put(key(pos), data)
		n++
	}
	if err := p.db.Write(batch, nil); err != nil {
		return 0, fmt.Errorf("write blocks: %w", err)
	}
	p.log.Debug("saved block entities", zap.Int("count", n))
	return n, nil
}

// Load places every stored block into w and restores its inventory. Restoring goes
// through World.LoadBlockEntity so the inventory hook re-evaluates each container.
// Records that cannot be decoded are skipped and reported together in the error.
func (p *Provider) Load(w *world.World) (int, error) {
	defer profiling.Track("storage.Load")()

	var errs error
	n := 0
	iter := p.db.NewIterator(util.BytesPrefix(keyPrefix), nil)
	defer iter.Release()
	for iter.Next() {
		pos, ok := parseKey(iter.Key())
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("malformed key %x", iter.Key()))
			continue
		}
		var r Record
		if err := json.Unmarshal(iter.Value(), &r); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("decode block %v: %w", pos, err))
			continue
		}

		s := r.State()
		be := w.PlaceBlock(pos, s)
		w.SetState(pos, s)
		if be != nil && be.Inventory != nil {
			stacks := make([]item.ItemStack, be.Inventory.Size())
			for _, st := range r.Items {
				if st.Slot < 0 || st.Slot >= len(stacks) {
					continue
				}
				stacks[st.Slot] = item.NewItemStack(st.Item, st.Count)
			}
			w.LoadBlockEntity(pos, stacks)
		}
		n++
	}
	if err := iter.Error(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("scan stored blocks: %w", err))
	}
	p.log.Debug("loaded block entities", zap.Int("count", n), zap.Error(errs))
	return n, errs
}

// RecordOf converts a state into a record without items.
func RecordOf(s world.State) Record {
	return Record{
		Block:  s.Type,
		Facing: s.Facing,
		Chest:  s.Chest,
		Flags:  Flags{Items: s.HasItems, Input: s.HasInput, Fuel: s.HasFuel},
	}
}

// State converts the record back into a block state.
func (r Record) State() world.State {
	return world.State{
		Type:     r.Block,
		Facing:   r.Facing,
		Chest:    r.Chest,
		HasItems: r.Flags.Items,
		HasInput: r.Flags.Input,
		HasFuel:  r.Flags.Fuel,
	}
}

func key(p world.Pos) []byte {
	k := make([]byte, len(keyPrefix)+12)
	n := copy(k, keyPrefix)
	binary.BigEndian.PutUint32(k[n:], uint32(int32(p[0])))
	binary.BigEndian.PutUint32(k[n+4:], uint32(int32(p[1])))
	binary.BigEndian.PutUint32(k[n+8:], uint32(int32(p[2])))
	return k
}

func parseKey(k []byte) (world.Pos, bool) {
	n := len(keyPrefix)
	if len(k) != n+12 {
		return world.Pos{}, false
	}
	return world.Pos{
		int(int32(binary.BigEndian.Uint32(k[n:]))),
		int(int32(binary.BigEndian.Uint32(k[n+4:]))),
		int(int32(binary.BigEndian.Uint32(k[n+8:]))),
	}, true
}
