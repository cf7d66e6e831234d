package controllers

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"resbook/config"
	"resbook/constants"
	"resbook/dto"
	"resbook/errors"
	"resbook/models"
	"resbook/repository"
	"resbook/response"
	"resbook/services"
	"resbook/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// ResourceController gom các handler cho resource + lưới availability
type ResourceController struct {
	resources    repository.ResourceRepository
	availability *services.AvailabilityService
}

func NewResourceController(resources repository.ResourceRepository, availability *services.AvailabilityService) *ResourceController {
	return &ResourceController{resources: resources, availability: availability}
}

func toResourceResponse(r *models.Resource) dto.ResourceResponse {
	return dto.ResourceResponse{
		ID:           r.ID,
		Name:         r.Name,
		ResourceType: r.ResourceType,
		Description:  r.Description,
		Location:     r.Location,
		IsActive:     r.IsActive,
		Properties:   r.Properties,
		Tags:         r.Tags,
		ImageURL:     r.ImageURL,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// invalidateResourceCache xóa cache danh sách resource sau khi ghi
func invalidateResourceCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Không thể kết nối Redis: %v", err)
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, rdb, "resources:*"); err != nil {
		log.Printf("Lỗi khi xóa cache resource: %v", err)
	}
}

// GetResources danh sách resource, cache theo filter trong Redis
func (ct *ResourceController) GetResources(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	filter := repository.ResourceFilter{
		ResourceType: c.Query("type"),
		Location:     c.Query("location"),
		Limit:        limit,
		Offset:       offset,
	}
	if activeStr := c.Query("isActive"); activeStr != "" {
		active := activeStr == "true"
		filter.IsActive = &active
	}

	cacheKey := fmt.Sprintf("resources:%s:%s:%s:%d:%d",
		filter.ResourceType, filter.Location, c.Query("isActive"), limit, offset)

	type cachedList struct {
		Items []dto.ResourceResponse `json:"items"`
		Total int64                  `json:"total"`
	}

	rdb, err := config.ConnectRedis()
	if err == nil {
		var cached cachedList
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && len(cached.Items) > 0 {
			page := offset/limit + 1
			response.SuccessWithPagination(c, cached.Items, page, limit, int(cached.Total))
			return
		}
	}

	resources, total, err := ct.resources.List(filter)
	if err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.ResourceResponse, 0, len(resources))
	for i := range resources {
		items = append(items, toResourceResponse(&resources[i]))
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, cachedList{Items: items, Total: total}, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu cache resource: %v", err)
		}
	}

	page := offset/limit + 1
	response.SuccessWithPagination(c, items, page, limit, int(total))
}

// GetResourceDetail chi tiết một resource
func (ct *ResourceController) GetResourceDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resource, err := ct.resources.FindByID(id)
	if err != nil {
		response.ServerError(c)
		return
	}
	if resource == nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toResourceResponse(resource))
}

// CreateResource tạo resource mới, chỉ admin.
// Loại turf chỉ được có một và tên bắt buộc là "Turf".
func (ct *ResourceController) CreateResource(c *gin.Context) {
	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	resource := models.Resource{
		Name:         strings.TrimSpace(req.Name),
		ResourceType: req.ResourceType,
		Description:  req.Description,
		Location:     req.Location,
		IsActive:     true,
		Properties:   req.Properties,
		Tags:         req.Tags,
	}
	if req.IsActive != nil {
		resource.IsActive = *req.IsActive
	}

	if resource.IsTurf() {
		exists, err := ct.resources.TurfExists(0)
		if err != nil {
			response.ServerError(c)
			return
		}
		if exists {
			response.Conflict(c, errors.ErrDuplicateTurf.Error())
			return
		}
		resource.Name = constants.TurfName
	}

	if err := validator.ValidateResource(&resource); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	existing, err := ct.resources.FindByName(resource.Name)
	if err != nil {
		response.ServerError(c)
		return
	}
	if existing != nil {
		response.Conflict(c, errors.ErrDuplicateResource.Error())
		return
	}

	if err := ct.resources.Create(&resource); err != nil {
		response.ServerError(c)
		return
	}

	invalidateResourceCache()
	response.Created(c, toResourceResponse(&resource))
}

// UpdateResource sửa resource, chỉ admin
func (ct *ResourceController) UpdateResource(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	resource, err := ct.resources.FindByID(id)
	if err != nil {
		response.ServerError(c)
		return
	}
	if resource == nil {
		response.NotFound(c)
		return
	}

	if req.Name != nil {
		resource.Name = strings.TrimSpace(*req.Name)
	}
	if req.ResourceType != nil {
		resource.ResourceType = *req.ResourceType
	}
	if req.Description != nil {
		resource.Description = *req.Description
	}
	if req.Location != nil {
		resource.Location = *req.Location
	}
	if req.IsActive != nil {
		resource.IsActive = *req.IsActive
	}
	if req.Properties != nil {
		resource.Properties = req.Properties
	}
	if req.Tags != nil {
		resource.Tags = req.Tags
	}

	if resource.IsTurf() {
		exists, err := ct.resources.TurfExists(resource.ID)
		if err != nil {
			response.ServerError(c)
			return
		}
		if exists {
			response.Conflict(c, errors.ErrDuplicateTurf.Error())
			return
		}
		resource.Name = constants.TurfName
	}

	if err := validator.ValidateResource(resource); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	if err := ct.resources.Save(resource); err != nil {
		response.ServerError(c)
		return
	}

	invalidateResourceCache()
	response.Success(c, toResourceResponse(resource))
}

// DeleteResource xóa resource, chỉ admin
func (ct *ResourceController) DeleteResource(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resource, err := ct.resources.FindByID(id)
	if err != nil {
		response.ServerError(c)
		return
	}
	if resource == nil {
		response.NotFound(c)
		return
	}

	if err := ct.resources.Delete(id); err != nil {
		response.ServerError(c)
		return
	}

	invalidateResourceCache()
	response.Success(c, nil)
}

// GetResourceAvailability lưới slot trống của resource trong một ngày
func (ct *ResourceController) GetResourceAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resource, err := ct.resources.FindByID(id)
	if err != nil {
		response.ServerError(c)
		return
	}
	if resource == nil {
		response.NotFound(c)
		return
	}

	dateStr := c.DefaultQuery("date", time.Now().UTC().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		// Ngày không parse được thì dùng hôm nay thay vì trả lỗi
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	duration := 1.0
	if durStr := c.Query("duration"); durStr != "" {
		if parsed, err := strconv.ParseFloat(durStr, 64); err == nil {
			duration = parsed
		}
	}
	if duration <= 0 {
		duration = 1.0
	}

	// Lưới slot thay đổi khi booking được duyệt nên TTL để ngắn
	cacheKey := fmt.Sprintf("availability:%d:%s:%g", resource.ID, date.Format("2006-01-02"), duration)
	rdb, rerr := config.ConnectRedis()
	if rerr == nil {
		var cached dto.AvailabilityResponse
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && cached.ResourceID != 0 {
			response.Success(c, cached)
			return
		}
	}

	slots, err := ct.availability.AvailableSlots(resource, date, duration)
	if err != nil {
		response.ServerError(c)
		return
	}

	result := dto.AvailabilityResponse{
		ResourceID:        resource.ID,
		ResourceName:      resource.Name,
		QueryDate:         date.Format("2006-01-02"),
		SlotDurationHours: duration,
		AvailableSlots:    slots,
	}

	if rerr == nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, result, 2*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu cache availability: %v", err)
		}
	}

	response.Success(c, result)
}

// invalidateAvailabilityCache xóa lưới slot đã cache của một resource
func invalidateAvailabilityCache(resourceID uint) {
	invalidateAvailabilityPattern(fmt.Sprintf("availability:%d:*", resourceID))
}

// invalidateAllAvailabilityCaches dùng khi một lượt quét đổi trạng thái trên nhiều resource
func invalidateAllAvailabilityCaches() {
	invalidateAvailabilityPattern("availability:*")
}

func invalidateAvailabilityPattern(pattern string) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Không thể kết nối Redis: %v", err)
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, rdb, pattern); err != nil {
		log.Printf("Lỗi khi xóa cache availability: %v", err)
	}
}

// ---- Fuzzy search ----

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tách loại resource từ query
func parseResourceType(query string) string {
	typeKeywords := map[string][]string{
		constants.ResourceTypeMeetingRoom: {"meeting room", "phong hop", "conference", "room"},
		constants.ResourceTypeLaptop:      {"laptop", "may tinh", "notebook", "computer"},
		constants.ResourceTypePhone:       {"phone", "dien thoai", "mobile"},
		constants.ResourceTypeTurf:        {"turf", "san bong", "field", "pitch"},
	}

	normalizedQuery := normalizeInput(query)
	for resourceType, keywords := range typeKeywords {
		matcher := createMatcher(keywords)
		match := matcher.Closest(normalizedQuery)
		if match != "" && strings.Contains(normalizedQuery, match) {
			return resourceType
		}
	}
	return ""
}

type scoredResource struct {
	Resource models.Resource
	Score    int
}

// Tính điểm phù hợp cho resource
func calculateResourceScore(query string, r models.Resource, cmLocation *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	if matchedType := parseResourceType(normalizedQuery); matchedType != "" && matchedType == r.ResourceType {
		score += 20
	}

	normalizedName := normalizeInput(r.Name)
	similarity := calculateSimilarity(normalizedQuery, normalizedName)
	if similarity > 0.7 || strings.Contains(normalizedQuery, normalizedName) {
		score += 15
	}

	if r.Location != "" && cmLocation.Closest(normalizedQuery) == normalizeInput(r.Location) {
		score += 13
	}

	score += calculateTagScore(normalizedQuery, r.Tags)
	return score
}

func calculateTagScore(query string, tags []string) int {
	maxTagScore := 12
	tagScore := 0

	for _, tag := range tags {
		normalizedTag := normalizeInput(tag)
		similarity := calculateSimilarity(query, normalizedTag)
		if similarity > 0.7 || strings.Contains(query, normalizedTag) {
			tagScore += 4
			if tagScore >= maxTagScore {
				break
			}
		}
	}
	return tagScore
}

// Tạo danh sách location duy nhất cho closestmatch
func prepareLocationList(resources []models.Resource) []string {
	uniqueValues := make(map[string]bool)
	for _, r := range resources {
		if r.Location != "" {
			uniqueValues[normalizeInput(r.Location)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

func filterAndScoreResources(query string, resources []models.Resource, cmLocation *closestmatch.ClosestMatch) []scoredResource {
	var filtered []scoredResource
	scoreCh := make(chan scoredResource, len(resources))
	var wg sync.WaitGroup

	for _, r := range resources {
		wg.Add(1)
		go func(r models.Resource) {
			defer wg.Done()
			score := calculateResourceScore(query, r, cmLocation)
			if score > 0 {
				scoreCh <- scoredResource{Resource: r, Score: score}
			}
		}(r)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scored := range scoreCh {
		filtered = append(filtered, scored)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})
	return filtered
}

// SearchResources tìm resource theo câu truy vấn tự nhiên (gõ sai vẫn ra)
func (ct *ResourceController) SearchResources(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		response.BadRequest(c, "q is required")
		return
	}

	active := true
	resources, _, err := ct.resources.List(repository.ResourceFilter{IsActive: &active, Limit: 500})
	if err != nil {
		response.ServerError(c)
		return
	}

	locations := prepareLocationList(resources)
	if len(locations) == 0 {
		locations = []string{""}
	}
	cmLocation := createMatcher(locations)

	scored := filterAndScoreResources(query, resources, cmLocation)

	items := make([]dto.ResourceResponse, 0, len(scored))
	for i := range scored {
		items = append(items, toResourceResponse(&scored[i].Resource))
	}

	response.Success(c, items)
}
