// Package catalog defines the static resource-type taxonomy: for every
// Terraform-style resource type it knows, it provides display metadata
// (category, colors, icon, default size) plus the visibility and container
// flags that drive the filter and placement stages. The catalog is built
// once at init time and is read-only afterwards.
package catalog

// Category classifies a resource type into one of the fixed swim lanes.
// The set is closed; unknown types resolve to CategoryOther.
type Category string

const (
	CategoryCompute    Category = "compute"
	CategoryNetwork    Category = "network"
	CategoryStorage    Category = "storage"
	CategoryDatabase   Category = "database"
	CategorySecurity   Category = "security"
	CategoryServerless Category = "serverless"
	CategoryContainer  Category = "container"
	CategoryOther      Category = "other"
)

// LaneOrder defines the vertical display order of the category swim lanes.
var LaneOrder = []Category{
	CategoryNetwork,
	CategoryCompute,
	CategoryContainer,
	CategoryServerless,
	CategoryDatabase,
	CategoryStorage,
	CategorySecurity,
	CategoryOther,
}

// TypeProfile holds the display metadata for a single resource type.
type TypeProfile struct {
	Category    Category
	Color       string // accent / icon color
	BgColor     string // node fill
	BorderColor string
	Icon        string
	Width       int
	Height      int
	Visible     bool
	IsContainer bool
}

// categoryStyle is the shared palette per category. Individual profiles
// inherit these colors unless overridden below.
var categoryStyle = map[Category]struct {
	color  string
	bg     string
	border string
	stroke string
}{
	CategoryCompute:    {"#ED7100", "#FDF2E9", "#ED7100", "#ED7100"},
	CategoryNetwork:    {"#8C4FFF", "#F4EFFF", "#8C4FFF", "#8C4FFF"},
	CategoryStorage:    {"#7AA116", "#F4F9E9", "#7AA116", "#7AA116"},
	CategoryDatabase:   {"#C925D1", "#FBEFFC", "#C925D1", "#C925D1"},
	CategorySecurity:   {"#DD344C", "#FCEDEF", "#DD344C", "#DD344C"},
	CategoryServerless: {"#ED7100", "#FDF2E9", "#ED7100", "#ED7100"},
	CategoryContainer:  {"#ED7100", "#FDF2E9", "#ED7100", "#ED7100"},
	CategoryOther:      {"#7D8998", "#F2F3F3", "#7D8998", "#B0B7BF"},
}

// typeEntries is the source of truth for known resource types. Everything
// else about a profile (colors, default size) is derived in init.
var typeEntries = map[string]struct {
	category  Category
	icon      string
	container bool
	hidden    bool
}{
	// Network
	"aws_vpc":                     {category: CategoryNetwork, icon: "🌐", container: true},
	"aws_subnet":                  {category: CategoryNetwork, icon: "🕸️", container: true},
	"aws_internet_gateway":        {category: CategoryNetwork, icon: "🚪"},
	"aws_nat_gateway":             {category: CategoryNetwork, icon: "🔀"},
	"aws_route_table":             {category: CategoryNetwork, icon: "🗺️"},
	"aws_route":                   {category: CategoryNetwork, icon: "➡️"},
	"aws_route_table_association": {category: CategoryNetwork, icon: "🔗"},
	"aws_eip":                     {category: CategoryNetwork, icon: "📍"},
	"aws_lb":                      {category: CategoryNetwork, icon: "⚖️"},
	"aws_alb":                     {category: CategoryNetwork, icon: "⚖️"},
	"aws_elb":                     {category: CategoryNetwork, icon: "⚖️"},
	"aws_lb_target_group":         {category: CategoryNetwork, icon: "🎯"},
	"aws_lb_listener":             {category: CategoryNetwork, icon: "👂"},
	"aws_route53_zone":            {category: CategoryNetwork, icon: "🌍"},
	"aws_route53_record":          {category: CategoryNetwork, icon: "📇"},
	"aws_cloudfront_distribution": {category: CategoryNetwork, icon: "🛰️"},
	"aws_api_gateway_rest_api":    {category: CategoryNetwork, icon: "🚏"},
	"aws_vpc_endpoint":            {category: CategoryNetwork, icon: "🔌"},

	// Compute
	"aws_instance":              {category: CategoryCompute, icon: "🖥️"},
	"aws_launch_template":       {category: CategoryCompute, icon: "📋"},
	"aws_autoscaling_group":     {category: CategoryCompute, icon: "📈"},
	"aws_ami":                   {category: CategoryCompute, icon: "💿"},
	"aws_spot_instance_request": {category: CategoryCompute, icon: "🖥️"},

	// Containers
	"aws_ecs_cluster":         {category: CategoryContainer, icon: "🐳"},
	"aws_ecs_service":         {category: CategoryContainer, icon: "🐳"},
	"aws_ecs_task_definition": {category: CategoryContainer, icon: "📦"},
	"aws_eks_cluster":         {category: CategoryContainer, icon: "☸️"},
	"aws_eks_node_group":      {category: CategoryContainer, icon: "☸️"},
	"aws_ecr_repository":      {category: CategoryContainer, icon: "🗃️"},

	// Serverless
	"aws_lambda_function":             {category: CategoryServerless, icon: "λ"},
	"aws_lambda_permission":           {category: CategoryServerless, icon: "λ"},
	"aws_lambda_event_source_mapping": {category: CategoryServerless, icon: "λ"},
	"aws_sqs_queue":                   {category: CategoryServerless, icon: "📬"},
	"aws_sns_topic":                   {category: CategoryServerless, icon: "📣"},

	// Database
	"aws_db_instance":              {category: CategoryDatabase, icon: "🗄️"},
	"aws_db_subnet_group":          {category: CategoryDatabase, icon: "🗄️"},
	"aws_db_parameter_group":       {category: CategoryDatabase, icon: "⚙️"},
	"aws_rds_cluster":              {category: CategoryDatabase, icon: "🗄️"},
	"aws_rds_cluster_instance":     {category: CategoryDatabase, icon: "🗄️"},
	"aws_dynamodb_table":           {category: CategoryDatabase, icon: "⚡"},
	"aws_elasticache_cluster":      {category: CategoryDatabase, icon: "🧠"},
	"aws_elasticache_subnet_group": {category: CategoryDatabase, icon: "🧠"},
	"aws_redshift_cluster":         {category: CategoryDatabase, icon: "📊"},

	// Storage
	"aws_s3_bucket":            {category: CategoryStorage, icon: "🪣"},
	"aws_s3_bucket_policy":     {category: CategoryStorage, icon: "🪣"},
	"aws_s3_bucket_versioning": {category: CategoryStorage, icon: "🪣"},
	"aws_ebs_volume":           {category: CategoryStorage, icon: "💾"},
	"aws_volume_attachment":    {category: CategoryStorage, icon: "💾"},
	"aws_efs_file_system":      {category: CategoryStorage, icon: "📁"},
	"aws_efs_mount_target":     {category: CategoryStorage, icon: "📁"},
	"aws_glacier_vault":        {category: CategoryStorage, icon: "🧊"},
	"aws_backup_vault":         {category: CategoryStorage, icon: "🧊"},

	// Security
	"aws_security_group":             {category: CategorySecurity, icon: "🛡️"},
	"aws_security_group_rule":        {category: CategorySecurity, icon: "🛡️"},
	"aws_iam_role":                   {category: CategorySecurity, icon: "👤"},
	"aws_iam_policy":                 {category: CategorySecurity, icon: "📜"},
	"aws_iam_role_policy_attachment": {category: CategorySecurity, icon: "📜"},
	"aws_iam_instance_profile":       {category: CategorySecurity, icon: "👤"},
	"aws_iam_user":                   {category: CategorySecurity, icon: "👤"},
	"aws_kms_key":                    {category: CategorySecurity, icon: "🔑"},
	"aws_acm_certificate":            {category: CategorySecurity, icon: "📄"},
	"aws_waf_web_acl":                {category: CategorySecurity, icon: "🧱"},
	"aws_network_acl":                {category: CategorySecurity, icon: "🧱"},

	// Noise: helper resources that clutter the diagram. They stay in the
	// catalog so the filter stage can name them, but are never rendered.
	"random_password":             {category: CategorySecurity, icon: "🎲", hidden: true},
	"random_string":               {category: CategoryOther, icon: "🎲", hidden: true},
	"random_id":                   {category: CategoryOther, icon: "🎲", hidden: true},
	"random_pet":                  {category: CategoryOther, icon: "🎲", hidden: true},
	"tls_private_key":             {category: CategorySecurity, icon: "🔑", hidden: true},
	"aws_key_pair":                {category: CategorySecurity, icon: "🔑", hidden: true},
	"null_resource":               {category: CategoryOther, icon: "∅", hidden: true},
	"local_file":                  {category: CategoryOther, icon: "📄", hidden: true},
	"aws_cloudwatch_log_group":    {category: CategoryOther, icon: "📊", hidden: true},
	"aws_cloudwatch_metric_alarm": {category: CategoryOther, icon: "⏰", hidden: true},
}

// Default node dimensions; containers start larger and grow with content.
const (
	DefaultNodeWidth       = 160
	DefaultNodeHeight      = 64
	DefaultContainerWidth  = 360
	DefaultContainerHeight = 240
)

// DefaultProfile is the explicit fallback returned by Lookup for resource
// types the catalog does not know. Unknown types render as ordinary
// visible nodes in the "other" lane.
var DefaultProfile = TypeProfile{
	Category:    CategoryOther,
	Color:       categoryStyle[CategoryOther].color,
	BgColor:     categoryStyle[CategoryOther].bg,
	BorderColor: categoryStyle[CategoryOther].border,
	Icon:        "❔",
	Width:       DefaultNodeWidth,
	Height:      DefaultNodeHeight,
	Visible:     true,
}

// profiles is the resolved type → profile index, built once in init.
var profiles map[string]TypeProfile

func init() {
	profiles = make(map[string]TypeProfile, len(typeEntries))
	for resourceType, e := range typeEntries {
		style := categoryStyle[e.category]
		p := TypeProfile{
			Category:    e.category,
			Color:       style.color,
			BgColor:     style.bg,
			BorderColor: style.border,
			Icon:        e.icon,
			Width:       DefaultNodeWidth,
			Height:      DefaultNodeHeight,
			Visible:     !e.hidden,
			IsContainer: e.container,
		}
		if e.container {
			p.Width = DefaultContainerWidth
			p.Height = DefaultContainerHeight
		}
		profiles[resourceType] = p
	}
}

// Lookup returns the TypeProfile for a resource type. The lookup is total:
// unknown types get DefaultProfile rather than a zero value, so callers
// never need to special-case missing entries.
func Lookup(resourceType string) TypeProfile {
	if p, found := profiles[resourceType]; found {
		return p
	}
	return DefaultProfile
}

// StrokeColor returns the edge stroke color associated with a category.
func StrokeColor(cat Category) string {
	if s, found := categoryStyle[cat]; found {
		return s.stroke
	}
	return categoryStyle[CategoryOther].stroke
}

// edgePriority ranks categories for edge styling. When an edge connects
// two categories, the higher-priority one decides the stroke: network and
// security relationships are highlighted over generic compute links.
var edgePriority = map[Category]int{
	CategoryNetwork:  5,
	CategorySecurity: 4,
	CategoryStorage:  3,
	CategoryDatabase: 3,
	CategoryCompute:  2,
}

// DominantCategory picks which endpoint category styles an edge, by the
// fixed priority network > security > storage/database > compute > other.
// On a priority tie the first argument wins.
func DominantCategory(a, b Category) Category {
	if edgePriority[b] > edgePriority[a] {
		return b
	}
	return a
}
