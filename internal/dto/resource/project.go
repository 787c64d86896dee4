package resource

type Project struct {
	UUID       string     `json:"uuid"`
	TenantMeta TenantMeta `json:"tenant_meta"`
	Meta       Meta       `json:"meta"`
	Spec       Spec       `json:"spec"`
}

type TenantMeta struct {
	Namespace string `json:"namespace"`
}

type Meta struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CreateTime  string   `json:"create_time"`
	UpdateTime  string   `json:"update_time"`
}

type Spec struct {
	PlatformSource string `json:"platform_source"`
	Git            Git    `json:"git"`
}

type Git struct {
	HTTPCloneURL string `json:"http_clone_url"`
	FullName     string `json:"full_name"`
	WebURL       string `json:"web_url"`
}

type ListProjectsResponse struct {
	List ProjectList `json:"list"`
}

type ProjectList struct {
	Objects []Project `json:"objects"`
}
