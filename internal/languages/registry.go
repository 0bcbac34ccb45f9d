package languages

import (
	"path/filepath"
	"sort"
	"strings"
)

// Registry 管理语言档案注册与后缀映射。
type Registry struct {
	profiles     []*Profile
	profileByExt map[string]*Profile
}

// NewRegistry 创建并注册所有内置语言档案。
func NewRegistry() *Registry {
	registry := &Registry{
		profiles:     builtinProfiles,
		profileByExt: make(map[string]*Profile),
	}

	for _, profile := range registry.profiles {
		for _, ext := range profile.Extensions {
			registry.profileByExt[strings.ToLower(ext)] = profile
		}
	}

	return registry
}

// ProfileForFile 根据文件后缀查找语言档案。
func (r *Registry) ProfileForFile(path string) (*Profile, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	profile, ok := r.profileByExt[ext]
	return profile, ok
}

// Languages 返回按名称排序的已注册语言档案。
func (r *Registry) Languages() []*Profile {
	result := append([]*Profile(nil), r.profiles...)
	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// ExtensionsForLanguage 返回指定语言对应的全部后缀。
func (r *Registry) ExtensionsForLanguage(language string) []string {
	for _, profile := range r.profiles {
		if profile.Name == language {
			extensions := append([]string(nil), profile.Extensions...)
			sort.Strings(extensions)
			return extensions
		}
	}
	return nil
}
