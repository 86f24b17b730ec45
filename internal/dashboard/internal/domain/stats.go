package domain

type Stats struct {
	// JobsPosted 我发布的岗位数
	JobsPosted int64
	// ApplicationsCount 我投出去的投递数
	ApplicationsCount int64
	// ApplicationsReceived 我发布的岗位收到的投递数
	ApplicationsReceived int64
	// ApplicationsByStatus 我的投递按状态的计数，没有的状态不在 map 里
	ApplicationsByStatus map[string]int64
}
