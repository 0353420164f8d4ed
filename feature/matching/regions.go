package matching

// regionsByName maps the friendly region names used in Collibra resource metadata to AWS region codes.
var regionsByName = map[string]string{
	"OHIO":               "us-east-2",
	"NORTHERNVIRGINIA":   "us-east-1",
	"NORTHERNCALIFORNIA": "us-west-1",
	"OREGON":             "us-west-2",
	"CAPETOWN":           "af-south-1",
	"HONGKONG":           "ap-east-1",
	"JAKARTA":            "ap-southeast-3",
	"MUMBAI":             "ap-south-1",
	"OSAKA":              "ap-northeast-3",
	"SEOUL":              "ap-northeast-2",
	"SINGAPORE":          "ap-southeast-1",
	"SYDNEY":             "ap-southeast-2",
	"TOKYO":              "ap-northeast-1",
	"CENTRAL":            "ca-central-1",
	"BEIJING":            "cn-north-1",
	"NINGXIA":            "cn-northwest-1",
	"FRANKFURT":          "eu-central-1",
	"IRELAND":            "eu-west-1",
	"LONDON":             "eu-west-2",
	"MILAN":              "eu-south-1",
	"PARIS":              "eu-west-3",
	"STOCKHOLM":          "eu-north-1",
	"ZURICH":             "eu-central-2",
	"BAHRAIN":            "me-south-1",
	"UAE":                "me-central-1",
	"SAOPAULO":           "sa-east-1",
	"GOVCLOUDEAST":       "us-gov-east-1",
	"GOVCLOUDWEST":       "us-gov-west-1",
}

// RegionCode returns the AWS region code for a friendly region name.
func RegionCode(name string) (string, bool) {
	code, ok := regionsByName[name]
	return code, ok
}
