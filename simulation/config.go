package simulation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sarchlab/tlbsim/mem/vm"
)

// Environment variables read by LoadConfig.
const (
	EnvTLBSize        = "TLB_SIZE"
	EnvAddressBits    = "TLBSIM_ADDRESS_BITS"
	EnvPageOffsetBits = "TLBSIM_PAGE_OFFSET_BITS"
	EnvSeed           = "TLBSIM_SEED"
)

// Config fixes the shape of the simulated translation unit for one run.
type Config struct {
	// AddressBits is the virtual address width M.
	AddressBits uint64

	// Log2PageSize is the page offset width N.
	Log2PageSize uint64

	// NumTLBEntries is the TLB capacity T.
	NumTLBEntries int

	// Seed seeds the page table generator. 0 picks a seed from the clock.
	Seed int64
}

// DefaultConfig returns a 32-bit address space with 4 KiB pages and a
// two-entry TLB.
func DefaultConfig() Config {
	return Config{
		AddressBits:   32,
		Log2PageSize:  12,
		NumTLBEntries: 2,
	}
}

// AddressSpace returns the address space the config describes.
func (c Config) AddressSpace() vm.AddressSpace {
	return vm.AddressSpace{
		AddressBits:  c.AddressBits,
		Log2PageSize: c.Log2PageSize,
	}
}

// Validate checks M, N and T. Errors wrap vm.ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.AddressSpace().Validate(); err != nil {
		return err
	}

	if c.NumTLBEntries <= 0 {
		return fmt.Errorf("%w: TLB must have at least one entry, got %d",
			vm.ErrInvalidConfig, c.NumTLBEntries)
	}

	return nil
}

// LoadConfig starts from DefaultConfig and applies the environment. The
// given env files are loaded first; without any, a .env file in the working
// directory is loaded if there is one. Variables already set in the
// environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}

	c := DefaultConfig()

	if err := lookupUint(EnvAddressBits, &c.AddressBits); err != nil {
		return Config{}, err
	}

	if err := lookupUint(EnvPageOffsetBits, &c.Log2PageSize); err != nil {
		return Config{}, err
	}

	tlbSize := uint64(c.NumTLBEntries)
	if err := lookupUint(EnvTLBSize, &tlbSize); err != nil {
		return Config{}, err
	}
	c.NumTLBEntries = int(tlbSize)

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer",
				vm.ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = seed
	}

	return c, nil
}

func loadEnvFiles(envFiles []string) error {
	if len(envFiles) > 0 {
		return godotenv.Load(envFiles...)
	}

	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

func lookupUint(name string, dst *uint64) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}

	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a non-negative integer",
			vm.ErrInvalidConfig, name, v)
	}

	*dst = n

	return nil
}
