package tenant

import "strings"

// Profile is the person a tenant's CV belongs to.
type Profile struct {
	Name            string   `json:"name" yaml:"name"`
	PrependedTitles []string `json:"prependedTitles,omitempty" yaml:"prependedTitles"`
	AppendedTitles  []string `json:"appendedTitles,omitempty" yaml:"appendedTitles"`
	About           string   `json:"about,omitempty" yaml:"about"`
}

// FullName renders the name with its academic titles, e.g.
// "Dr. Prof. Jane Doe, PhD, MSc".
func (p Profile) FullName() string {
	name := p.Name
	if prepended := strings.Join(p.PrependedTitles, " "); prepended != "" {
		name = prepended + " " + name
	}
	if appended := strings.Join(p.AppendedTitles, ", "); appended != "" {
		name = name + ", " + appended
	}
	return name
}

// AssetPath joins an absolute asset path onto the site's base URL so assets
// resolve when the site is served from a sub path. Relative paths and full
// URLs are returned unchanged.
func AssetPath(baseURL, path string) string {
	if !strings.HasPrefix(path, "/") {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// WithAssetBase rewrites the tenant's project images, screenshots and logos
// against baseURL. The receiver is modified in place.
func (t *Tenant) WithAssetBase(baseURL string) *Tenant {
	for i := range t.Projects {
		p := &t.Projects[i]
		for j, img := range p.Images {
			p.Images[j] = AssetPath(baseURL, img)
		}
		for j, shot := range p.Screenshots {
			p.Screenshots[j] = AssetPath(baseURL, shot)
		}
		if p.Logo != "" {
			p.Logo = AssetPath(baseURL, p.Logo)
		}
	}
	return t
}
