package aws

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Profile is a named profile from the shared AWS config files
type Profile struct {
	Name   string
	Region string
	Source string // "credentials" or "config"
}

var (
	credentialsSectionRe = regexp.MustCompile(`^\[([^\]]+)\]$`)
	configSectionRe      = regexp.MustCompile(`^\[profile\s+([^\]]+)\]$`)
	configDefaultRe      = regexp.MustCompile(`^\[default\]$`)
	regionRe             = regexp.MustCompile(`^\s*region\s*=\s*(.+)$`)
)

// ListProfiles reads AWS profiles from the shared credentials and config
// files, honoring AWS_SHARED_CREDENTIALS_FILE and AWS_CONFIG_FILE.
func ListProfiles() ([]Profile, error) {
	profileMap := make(map[string]*Profile)

	// Parse credentials file
	if path, err := sharedFile("AWS_SHARED_CREDENTIALS_FILE", "credentials"); err == nil {
		if credProfiles, err := parseINIFile(path, "credentials", false); err == nil {
			for _, p := range credProfiles {
				profileMap[p.Name] = &p
			}
		}
	}

	// Parse config file (may add region info or new profiles)
	if path, err := sharedFile("AWS_CONFIG_FILE", "config"); err == nil {
		if configProfiles, err := parseINIFile(path, "config", true); err == nil {
			for _, p := range configProfiles {
				if existing, ok := profileMap[p.Name]; ok {
					if existing.Region == "" && p.Region != "" {
						existing.Region = p.Region
					}
				} else {
					// SSO and role profiles only live in the config file
					profileMap[p.Name] = &p
				}
			}
		}
	}

	profiles := make([]Profile, 0, len(profileMap))
	for _, p := range profileMap {
		profiles = append(profiles, *p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		// Put "default" first, then sort alphabetically
		if profiles[i].Name == "default" {
			return true
		}
		if profiles[j].Name == "default" {
			return false
		}
		return profiles[i].Name < profiles[j].Name
	})

	return profiles, nil
}

// ValidateProfile checks if a profile exists
func ValidateProfile(name string) bool {
	profiles, err := ListProfiles()
	if err != nil {
		return false
	}

	for _, p := range profiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

func sharedFile(env, name string) (string, error) {
	if path := os.Getenv(env); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".aws", name), nil
}

// parseINIFile parses an AWS INI-style config file
func parseINIFile(path, source string, isConfigFile bool) ([]Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var profiles []Profile
	var current *Profile

	start := func(name string) {
		if current != nil {
			profiles = append(profiles, *current)
		}
		current = &Profile{Name: strings.TrimSpace(name), Source: source}
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if isConfigFile {
			// Config file: [profile name] or [default]
			if configDefaultRe.MatchString(line) {
				start("default")
				continue
			}
			if matches := configSectionRe.FindStringSubmatch(line); len(matches) == 2 {
				start(matches[1])
				continue
			}
			if strings.HasPrefix(line, "[") {
				// [sso-session x], [services y]: not profiles
				if current != nil {
					profiles = append(profiles, *current)
				}
				current = nil
				continue
			}
		} else if matches := credentialsSectionRe.FindStringSubmatch(line); len(matches) == 2 {
			start(matches[1])
			continue
		}

		if current != nil {
			if matches := regionRe.FindStringSubmatch(line); len(matches) == 2 {
				current.Region = strings.TrimSpace(matches[1])
			}
		}
	}

	if current != nil {
		profiles = append(profiles, *current)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
