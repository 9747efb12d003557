package system

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// VolumeExts are the file types a slice stack can be opened from
var VolumeExts = []string{".pdf", ".xps", ".cbz", ".epub", ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".webp"}

// InitResourceLimits raises the open file limit; document stacks open one
// handle per worker.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось получить лимит файлов: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось установить лимит файлов: %v", err)
	} else {
		fmt.Printf("[*] Системный лимит открытых файлов увеличен до %d\n", rLimit.Cur)
	}
}

// RecommendedWorkers returns the number of logical CPUs, falling back to
// GOMAXPROCS when the host cannot be queried.
func RecommendedWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// MemoryReport describes the host memory in one line
func MemoryReport() (string, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return "", fmt.Errorf("failed to read memory stats: %w", err)
	}
	return fmt.Sprintf("%.1f GiB total, %.1f GiB available (%.0f%% used)",
		float64(vm.Total)/(1<<30), float64(vm.Available)/(1<<30), vm.UsedPercent), nil
}

// FindLatest returns the most recently modified file in dir whose
// extension is one of exts.
func FindLatest(dir string, exts []string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !slices.Contains(exts, strings.ToLower(filepath.Ext(f.Name()))) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("в папке %s не найдено подходящих файлов", dir)
	}

	return latestFile, nil
}

// FindLatestVolume resolves path to a slice stack. Directories holding
// slice images are used as is; otherwise the newest volume file wins.
func FindLatestVolume(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return path, nil
	}

	// Папка со срезами используется целиком, документ выбирается по дате
	latest, err := FindLatest(path, VolumeExts)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(latest)) {
	case ".pdf", ".xps", ".cbz", ".epub":
		return latest, nil
	default:
		return path, nil
	}
}
