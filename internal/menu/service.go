package menu

type Service struct {
	categories []Category
	resolve    func(string) string
}

// NewService serves categories with image paths passed through resolve.
func NewService(categories []Category, resolve func(string) string) *Service {
	if resolve == nil {
		resolve = func(p string) string { return p }
	}
	return &Service{categories: categories, resolve: resolve}
}

func (s *Service) Home() Home {
	return home
}

func (s *Service) Categories() []Category {
	out := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, s.withAssets(c))
	}
	return out
}

// Category returns the category with id, falling back to the first one
// for unknown ids.
func (s *Service) Category(id string) (Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return s.withAssets(c), true
		}
	}
	if len(s.categories) == 0 {
		return Category{}, false
	}
	return s.withAssets(s.categories[0]), false
}

func (s *Service) FindItem(key string) (Item, bool) {
	for _, c := range s.categories {
		for _, it := range c.Items {
			if it.Key == key {
				return it, true
			}
		}
	}
	return Item{}, false
}

// ResolveAsset maps an asset path to its public URL.
func (s *Service) ResolveAsset(p string) string {
	return s.resolve(p)
}

func (s *Service) withAssets(c Category) Category {
	c.Cover = s.resolve(c.Cover)
	return c
}
