package dto

// MenuItem adalah satu entri navigasi dashboard.
type MenuItem struct {
	Label string     `json:"label"`
	Icon  string     `json:"icon,omitempty"`
	To    string     `json:"to,omitempty"`
	Items []MenuItem `json:"items,omitempty"`
}

// HomeResponse adalah isi halaman dashboard per role.
type HomeResponse struct {
	Email string     `json:"email"`
	Role  string     `json:"role"`
	Menu  []MenuItem `json:"menu"`
}
