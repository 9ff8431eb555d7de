package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Objects     int    `json:"objects"`     // Number of scene objects
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// Constructor builds a scene, applying an optional camera override
type Constructor func(cameraOverrides ...geometry.CameraConfig) *Scene

type entry struct {
	info  SceneInfo
	build Constructor
}

const (
	groupBuiltIn  = "Built-in Scenes"
	groupShowcase = "Shape Showcases"
)

var registry = []entry{
	{
		info: SceneInfo{
			ID:          "default",
			Description: "Snowman with cone hat on a ground plane",
			Group:       groupBuiltIn,
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "spheres",
			Description: "3x3 grid of spheres varying hue and shininess",
			Group:       groupShowcase,
		},
		build: NewSphereGridScene,
	},
	{
		info: SceneInfo{
			ID:          "cylinder",
			Description: "Standing, leaning and lying capped cylinders",
			Group:       groupShowcase,
		},
		build: NewCylinderScene,
	},
	{
		info: SceneInfo{
			ID:          "cone",
			Description: "Upright, inverted and sideways capped cones",
			Group:       groupShowcase,
		},
		build: NewConeScene,
	},
}

// aliases maps alternative names to registered IDs
var aliases = map[string]string{
	"snowman": "default",
	"basic":   "default",
	"sphere":  "spheres",
}

// Create builds the scene registered under id (or one of its aliases)
func Create(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	for _, e := range registry {
		if e.info.ID == key {
			return e.build(cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", core.ErrUnknownScene, id, strings.Join(SceneIDs(), ", "))
}

// SceneIDs returns the registered scene IDs in registration order
func SceneIDs() []string {
	ids := make([]string, len(registry))
	for i, e := range registry {
		ids[i] = e.info.ID
	}
	return ids
}

// ListScenes returns metadata for every registered scene
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, e := range registry {
		info := e.info
		info.Name = titleCase(info.ID)
		info.DisplayName = info.Name
		info.Objects = e.build().GetPrimitiveCount()
		scenes = append(scenes, info)
	}
	return scenes
}

// ListAllScenes returns the registered scenes grouped by category
func ListAllScenes() ScenesResponse {
	var response ScenesResponse

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range ListScenes() {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != groupBuiltIn {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtInGroup, exists := groupMap[groupBuiltIn]; exists {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupBuiltIn,
			Scenes: builtInGroup,
		})
	}

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response
}

// titleCase converts an identifier to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
