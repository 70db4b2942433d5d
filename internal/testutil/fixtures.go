package testutil

// Sample JSON responses for API testing

// SampleAttractionsPage is a minimal valid listing page response
const SampleAttractionsPage = `{
	"nextPage": 1,
	"data": [
		{
			"id": 1,
			"name": "平安鐘",
			"category": "公共藝術",
			"description": "平安鐘祈求平安。",
			"address": "臺北市大安區忠孝東路三段",
			"transport": "捷運忠孝復興站二號出口",
			"mrt": "忠孝復興",
			"lat": 25.04181,
			"lng": 121.54398,
			"images": ["https://example.com/img/1-1.jpg", "https://example.com/img/1-2.jpg"]
		},
		{
			"id": 2,
			"name": "圓山大飯店",
			"category": "觀光景點",
			"description": "宮殿式建築。",
			"address": "臺北市中山區中山北路四段",
			"transport": "捷運劍潭站轉乘公車",
			"mrt": null,
			"lat": 25.07927,
			"lng": 121.52606,
			"images": ["https://example.com/img/2-1.jpg"]
		}
	]
}`

// SampleAttractionsLastPage has records but no next cursor
const SampleAttractionsLastPage = `{
	"nextPage": null,
	"data": [
		{
			"id": 3,
			"name": "大稻埕碼頭",
			"category": "歷史建築",
			"mrt": "北門",
			"images": []
		}
	]
}`

// SampleAttractionsEmpty signals exhaustion
const SampleAttractionsEmpty = `{
	"nextPage": null,
	"data": []
}`

// SampleAttractionDetail is a minimal valid detail response
const SampleAttractionDetail = `{
	"data": {
		"id": 1,
		"name": "平安鐘",
		"category": "公共藝術",
		"description": "平安鐘祈求平安。",
		"address": "臺北市大安區忠孝東路三段",
		"transport": "捷運忠孝復興站二號出口",
		"mrt": ["忠孝復興"],
		"lat": 25.04181,
		"lng": 121.54398,
		"images": ["https://example.com/img/1-1.jpg", "https://example.com/img/1-2.jpg"]
	}
}`

// SampleMRTsResponse lists station names as plain strings
const SampleMRTsResponse = `{
	"data": ["劍潭", "忠孝復興", "西門", "北門"]
}`

// SampleMRTsObjectResponse lists stations as {"mrt": name} objects
const SampleMRTsObjectResponse = `{
	"data": [{"mrt": "劍潭"}, {"mrt": "忠孝復興"}]
}`

// SampleFavoritesBareIDs carries favorites as bare attraction IDs
const SampleFavoritesBareIDs = `{"data": [1, 2]}`

// SampleFavoritesObjects carries favorites as attraction-like records
const SampleFavoritesObjects = `{"data": [{"id": 1, "name": "平安鐘"}, {"attraction_id": 2}]}`

// SampleTokenResponse is a successful login response
const SampleTokenResponse = `{"token": "test-jwt-token"}`

// SampleUserResponse is a verified-token response
const SampleUserResponse = `{"data": {"id": 7, "name": "test user", "email": "user@example.com"}}`

// SampleBookingResponse is a pending booking
const SampleBookingResponse = `{
	"data": {
		"attraction": {
			"id": 1,
			"name": "平安鐘",
			"address": "臺北市大安區忠孝東路三段",
			"image": "https://example.com/img/1-1.jpg"
		},
		"date": "2026-09-15",
		"time": "morning",
		"price": 2000
	}
}`

// SampleOrderResponse is a created order with settled payment
const SampleOrderResponse = `{
	"data": {
		"number": "20260901123456",
		"price": 2000,
		"trip": {
			"attraction": {"id": 1, "name": "平安鐘", "address": "臺北市大安區忠孝東路三段", "image": "https://example.com/img/1-1.jpg"},
			"date": "2026-09-15",
			"time": "morning"
		},
		"contact": {"name": "test user", "email": "user@example.com", "phone": "0912345678"},
		"payment": {"status": 0, "message": "付款成功"}
	}
}`

// SampleMemberResponse is a member dashboard payload
const SampleMemberResponse = `{
	"data": {
		"name": "test user",
		"email": "user@example.com",
		"orders": []
	}
}`

// SampleErrorResponse is the server's uniform error shape
const SampleErrorResponse = `{"error": true, "message": "查無景點資料"}`

// SampleEmptyResponse is an empty JSON response
const SampleEmptyResponse = `{}`
