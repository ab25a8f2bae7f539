package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// AllowsRole reports whether the route is open to the given role. Routes
// with an empty role list only require an authenticated user.
func (p Permission) AllowsRole(role string) bool {
	if len(p.Permissions) == 0 {
		return true
	}

	return slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func (d *PermissionData) FindPermissions(path, method string) Permission {
	if d.index == nil {
		idx := slices.IndexFunc(d.Endpoints, func(p Permission) bool {
			return p.Path == path && p.Method == method
		})
		if idx == -1 {
			return Permission{}
		}

		return d.Endpoints[idx]
	}

	return d.index[method+" "+path]
}

func (d *PermissionData) buildIndex() {
	d.index = make(map[string]Permission, len(d.Endpoints))
	for _, endpoint := range d.Endpoints {
		d.index[endpoint.Method+" "+endpoint.Path] = endpoint
	}
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded route permissions")

		return nil
	}

	permissions.buildIndex()

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded embedded route permissions")

	return &permissions
}
