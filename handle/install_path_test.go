package handle

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// InstallPathSuite is a white-box suite (package handle, not handle_test)
// since findInstallDir and its helpers are unexported: the platform-specific
// filesystem scan is the behavior worth locking down, and there is no
// exported seam to drive it from outside the package.
type InstallPathSuite struct {
	suite.Suite
}

func TestInstallPathSuite(t *testing.T) {
	suite.Run(t, new(InstallPathSuite))
}

func (s *InstallPathSuite) TestParseLibraryFoldersExtractsPaths() {
	dir := s.T().TempDir()
	vdf := filepath.Join(dir, "libraryfolders.vdf")
	content := "\"libraryfolders\"\n{\n\t\"0\"\n\t{\n\t\t\"path\"\t\t\"/mnt/extra\"\n\t}\n\t\"1\"\n\t{\n\t\t\"path\"\t\t\"/mnt/second\"\n\t}\n}\n"
	require.NoError(s.T(), os.WriteFile(vdf, []byte(content), 0o644))

	paths, err := parseLibraryFolders(vdf)
	require.NoError(s.T(), err)
	s.Equal([]string{"/mnt/extra", "/mnt/second"}, paths)
}

func (s *InstallPathSuite) TestParseLibraryFoldersMissingFile() {
	_, err := parseLibraryFolders(filepath.Join(s.T().TempDir(), "missing.vdf"))
	s.Error(err)
}

func (s *InstallPathSuite) TestFindLinuxInstallDirFindsSingleCandidate() {
	if runtime.GOOS == "windows" {
		s.T().Skip("Linux-specific lookup")
	}
	home := s.T().TempDir()
	candidate := filepath.Join(home, ".steam", "steam", "steamapps", "compatdata", "573090", "pfx",
		"drive_c", "users", "steamuser", "AppData", "Roaming", "Stormworks")
	require.NoError(s.T(), os.MkdirAll(candidate, 0o755))

	found, err := findLinuxInstallDir(home)
	require.NoError(s.T(), err)
	s.Equal(candidate, found)
}

func (s *InstallPathSuite) TestFindLinuxInstallDirNoCandidateFails() {
	home := s.T().TempDir()
	_, err := findLinuxInstallDir(home)
	s.Error(err)
}

func (s *InstallPathSuite) TestFindLinuxInstallDirAmbiguousAcrossTwoRootsFails() {
	home := s.T().TempDir()
	for _, root := range []string{filepath.Join(home, ".steam", "steam"), filepath.Join(home, ".local", "share", "Steam")} {
		candidate := filepath.Join(root, "steamapps", "compatdata", "573090", "pfx",
			"drive_c", "users", "steamuser", "AppData", "Roaming", "Stormworks")
		require.NoError(s.T(), os.MkdirAll(candidate, 0o755))
	}
	_, err := findLinuxInstallDir(home)
	s.Error(err)
}
