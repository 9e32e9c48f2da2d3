package handle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// findInstallDir locates the Stormworks save-data directory: a fixed path
// on Windows/macOS, and a libraryfolders.vdf scan across Steam's known
// library locations on Linux. root overrides the user's home/APPDATA
// directory, making this testable without touching the real filesystem.
func findInstallDir(root string) (string, error) {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if root != "" {
			appData = root
		}
		return mustExistDir(filepath.Join(appData, "Stormworks"))
	case "darwin":
		home := root
		if home == "" {
			home = os.Getenv("HOME")
		}
		return mustExistDir(filepath.Join(home, "Library", "Application Support", "Stormworks"))
	default:
		return findLinuxInstallDir(root)
	}
}

func mustExistDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("findInstallDir: could not find Stormworks installation at %s", path)
	}
	return path, nil
}

func findLinuxInstallDir(root string) (string, error) {
	home := root
	if home == "" {
		home = os.Getenv("HOME")
	}
	steamRoots := []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
	}
	basePaths := make(map[string]bool)
	for _, base := range steamRoots {
		basePaths[base] = true
		libraryFolders := filepath.Join(base, "steamapps", "libraryfolders.vdf")
		if extra, err := parseLibraryFolders(libraryFolders); err == nil {
			for _, p := range extra {
				basePaths[p] = true
			}
		}
	}

	bases := maps.Keys(basePaths)
	slices.Sort(bases)

	var found []string
	for _, base := range bases {
		candidate := filepath.Join(base, "steamapps", "compatdata", "573090", "pfx",
			"drive_c", "users", "steamuser", "AppData", "Roaming", "Stormworks")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			found = append(found, candidate)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("findInstallDir: could not find Stormworks installation path")
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("findInstallDir: found multiple Stormworks installation paths: %v", found)
	}
}

// parseLibraryFolders extracts every "path" entry from a Steam
// libraryfolders.vdf file.
func parseLibraryFolders(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, `"path"`) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		paths = append(paths, strings.Trim(fields[2], `"`))
	}
	return paths, scanner.Err()
}
