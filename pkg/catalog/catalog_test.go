package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name         string
		resourceType string
		wantCategory Category
		wantVisible  bool
	}{
		{"vpc is network", "aws_vpc", CategoryNetwork, true},
		{"subnet is network", "aws_subnet", CategoryNetwork, true},
		{"instance is compute", "aws_instance", CategoryCompute, true},
		{"lambda is serverless", "aws_lambda_function", CategoryServerless, true},
		{"ecs service is container", "aws_ecs_service", CategoryContainer, true},
		{"db instance is database", "aws_db_instance", CategoryDatabase, true},
		{"s3 bucket is storage", "aws_s3_bucket", CategoryStorage, true},
		{"security group is security", "aws_security_group", CategorySecurity, true},
		{"random password is hidden", "random_password", CategorySecurity, false},
		{"tls key is hidden", "tls_private_key", CategorySecurity, false},
		{"null resource is hidden", "null_resource", CategoryOther, false},
		{"log group is hidden", "aws_cloudwatch_log_group", CategoryOther, false},
		{"unknown type falls back to default", "gcp_compute_instance", CategoryOther, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Lookup(tt.resourceType)
			assert.Equal(t, tt.wantCategory, p.Category)
			assert.Equal(t, tt.wantVisible, p.Visible)
		})
	}
}

func TestLookup_UnknownIsDefaultProfile(t *testing.T) {
	assert.Equal(t, DefaultProfile, Lookup("azurerm_virtual_machine"))
}

func TestLookup_Containers(t *testing.T) {
	assert.True(t, Lookup("aws_vpc").IsContainer)
	assert.True(t, Lookup("aws_subnet").IsContainer)
	assert.False(t, Lookup("aws_instance").IsContainer)

	// Containers start with the larger default footprint.
	assert.Equal(t, DefaultContainerWidth, Lookup("aws_vpc").Width)
	assert.Equal(t, DefaultContainerHeight, Lookup("aws_vpc").Height)
	assert.Equal(t, DefaultNodeWidth, Lookup("aws_instance").Width)
}

func TestDominantCategory(t *testing.T) {
	tests := []struct {
		name string
		a, b Category
		want Category
	}{
		{"network beats security", CategoryNetwork, CategorySecurity, CategoryNetwork},
		{"network beats compute", CategoryCompute, CategoryNetwork, CategoryNetwork},
		{"security beats storage", CategoryStorage, CategorySecurity, CategorySecurity},
		{"security beats database", CategorySecurity, CategoryDatabase, CategorySecurity},
		{"storage beats compute", CategoryCompute, CategoryStorage, CategoryStorage},
		{"database beats compute", CategoryDatabase, CategoryCompute, CategoryDatabase},
		{"compute beats other", CategoryOther, CategoryCompute, CategoryCompute},
		{"tie keeps first", CategoryStorage, CategoryDatabase, CategoryStorage},
		{"other vs other", CategoryOther, CategoryOther, CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DominantCategory(tt.a, tt.b))
		})
	}
}

func TestStrokeColor_TotalOverLaneOrder(t *testing.T) {
	for _, cat := range LaneOrder {
		assert.NotEmpty(t, StrokeColor(cat), "category %s must have a stroke color", cat)
	}
	// Unknown categories fall back to the default stroke.
	assert.Equal(t, StrokeColor(CategoryOther), StrokeColor(Category("bogus")))
}
